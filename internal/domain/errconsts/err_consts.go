// Package errconsts holds constant error messages
package errconsts

// URL validation
const (
	MissingURLParameter = "Missing URL parameter"
	InvalidURLFormat    = "Invalid URL format"
	NoHostInURL         = "No host in URL"
	NotAYouTubeURL      = "Not a valid YouTube URL"
)

// External tools
const (
	YTDLPNotFound = "yt-dlp not found. Install with: pip install -U yt-dlp"
	DenoNotFound  = "Deno not found. Install from https://deno.land"
)

// Download phases
const (
	YTDLPRunFailure          = "Failed to run yt-dlp: %v"
	YTDLPCookieRunFailure    = "Failed to run yt-dlp with cookies: %v"
	DownloadRunFailure       = "Failed to download: %v"
	DownloadCookieRunFailure = "Failed to download with cookies: %v"
	MetadataParseFailure     = "Failed to parse metadata: %v"
	YTDLPError               = "yt-dlp error: %s"
	DownloadFailure          = "Download failed: %s"
	DownloadTimedOut         = "Download timed out"
	DownloadedFileNotFound   = "Downloaded file not found"
)

// Bot detection
const (
	BotDetectionTriggered = "YouTube bot detection triggered. %s"
	HintCookiesTried      = "Browser cookies didn't help. Try logging into YouTube in your browser and try again."
	HintNoCookies         = "Install Deno (https://deno.land) or log into YouTube in Chrome/Firefox."
)

// Audio cache
const (
	AudioFileNotFound = "Audio file not found"
	AudioReadFailure  = "Failed to read audio file: %v"
	InvalidSongID     = "invalid song ID: %q"
)
