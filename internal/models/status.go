package models

// DependencyStatus reports which external tools are available.
type DependencyStatus struct {
	YTDLP          bool   `json:"ytdlp"`
	YTDLPPath      string `json:"ytdlp_path"`
	Deno           bool   `json:"deno"`
	DenoPath       string `json:"deno_path"`
	FFmpeg         bool   `json:"ffmpeg"`
	CookiesBrowser string `json:"cookies_browser"`
}

// HealthReport is served by the health endpoint. The key names and
// placeholder strings are part of the frontend contract.
type HealthReport struct {
	Status         string `json:"status"`
	YTDLPVersion   string `json:"yt-dlp"`
	FFmpeg         string `json:"ffmpeg"`
	Deno           string `json:"deno"`
	CookiesBrowser string `json:"cookies_browser"`
	AudioDir       string `json:"audio_dir"`
	DownloadsCount int    `json:"downloads_count"`
}

// CookieStoreInfo describes one discovered browser cookie store.
type CookieStoreInfo struct {
	Browser        string `json:"browser"`
	Profile        string `json:"profile"`
	FilePath       string `json:"file_path"`
	DefaultProfile bool   `json:"default_profile"`
	MatchedCookies int    `json:"matched_cookies"`
}
