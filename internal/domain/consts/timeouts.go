package consts

import "time"

// yt-dlp phase timeouts.
const (
	DefaultMetaTimeout     = 60 * time.Second
	DefaultDownloadTimeout = 5 * time.Minute
)

// Server timeouts.
const (
	ServerReadTimeout     = 15 * time.Second
	ServerShutdownTimeout = 10 * time.Second
)
