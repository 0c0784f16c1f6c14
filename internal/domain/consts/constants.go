// Package consts holds various global, unchanging values.
package consts

// Program identity.
const (
	AppName      = "autostepper"
	AudioDirName = "audio"
	AudioExt     = ".mp3"
)

// DefaultBindAddr is the default listen address for the local server.
const DefaultBindAddr = "127.0.0.1:5000"

// Audio download parameters.
const (
	AudioFormat    = "mp3"
	AudioQuality   = "0"
	MaxFilesize    = "50m"
	AudioURLScheme = "autostepper://audio/"
	AudioMIMEType  = "audio/mpeg"
)

// Browser names as accepted by yt-dlp's --cookies-from-browser flag.
const (
	BrowserChrome   = "chrome"
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserBrave    = "brave"
	BrowserEdge     = "edge"
)

// CookieBrowserOrder is the preference order for cookie store detection.
var CookieBrowserOrder = [...]string{
	BrowserChrome,
	BrowserChromium,
	BrowserFirefox,
	BrowserBrave,
	BrowserEdge,
}

// ValidCookieBrowsers holds every browser name accepted as a manual
// cookie-browser override. Wider than the detection order since yt-dlp
// can read stores detection does not probe for.
var ValidCookieBrowsers = map[string]bool{
	BrowserChrome:   true,
	BrowserChromium: true,
	BrowserFirefox:  true,
	BrowserBrave:    true,
	BrowserEdge:     true,
	"safari":        true,
	"opera":         true,
}

// CookieStorePaths maps browser names to home-relative cookie store
// locations (Linux, macOS and Windows layouts). Firefox entries are profile
// directories rather than files.
var CookieStorePaths = map[string][]string{
	BrowserChrome: {
		".config/google-chrome/Default/Cookies",
		".config/google-chrome/Default/Network/Cookies",
		"Library/Application Support/Google/Chrome/Default/Cookies",
		"AppData/Local/Google/Chrome/User Data/Default/Network/Cookies",
	},
	BrowserChromium: {
		".config/chromium/Default/Cookies",
		".config/chromium/Default/Network/Cookies",
		"Library/Application Support/Chromium/Default/Cookies",
	},
	BrowserFirefox: {
		".mozilla/firefox",
		"Library/Application Support/Firefox/Profiles",
		"AppData/Roaming/Mozilla/Firefox/Profiles",
	},
	BrowserBrave: {
		".config/BraveSoftware/Brave-Browser/Default/Cookies",
		"Library/Application Support/BraveSoftware/Brave-Browser/Default/Cookies",
		"AppData/Local/BraveSoftware/Brave-Browser/User Data/Default/Network/Cookies",
	},
	BrowserEdge: {
		".config/microsoft-edge/Default/Cookies",
		"Library/Application Support/Microsoft Edge/Default/Cookies",
		"AppData/Local/Microsoft/Edge/User Data/Default/Network/Cookies",
	},
}

// YtDLPCandidates are probed in order, first spawnable binary wins.
var YtDLPCandidates = [...]string{
	"yt-dlp",
	"/usr/local/bin/yt-dlp",
	"/opt/homebrew/bin/yt-dlp",
	"/usr/bin/yt-dlp",
}

// DenoCandidates are checked for existence in order. Relative entries are
// joined onto the user home directory.
var DenoCandidates = [...]string{
	".deno/bin/deno",
	"/usr/local/bin/deno",
	"/opt/homebrew/bin/deno",
	"/usr/bin/deno",
	".local/bin/deno",
}

// ValidYouTubeHosts holds the exact hostnames downloads are accepted from.
var ValidYouTubeHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"youtu.be":                 true,
	"www.youtu.be":             true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
}

// YouTubeBaseDomain is the registrable domain cookie diagnostics filter on.
const YouTubeBaseDomain = "youtube.com"
