// Package keys holds various keys for software operations, such as terminal input keys and internal Viper keys.
package keys

// Files and directories.
const (
	CacheDir string = "cache-dir"
)

// Downloading.
const (
	CookieBrowser   string = "cookie-browser"
	MetaTimeout     string = "meta-timeout"
	DownloadTimeout string = "download-timeout"
)

// Server.
const (
	BindAddr string = "bind-addr"
)

// Logging.
const (
	DebugLevel string = "debug"
)
