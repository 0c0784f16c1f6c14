// Package cmdaudio holds constants for audio download command flags.
package cmdaudio

const (
	AudioFormat        = "--audio-format"
	AudioQuality       = "--audio-quality"
	CookiesFromBrowser = "--cookies-from-browser"
	DumpJSON           = "--dump-json"
	ExtractAudio       = "-x"
	JSRuntimes         = "--js-runtimes"
	MaxFilesize        = "--max-filesize"
	NoDownload         = "--no-download"
	NoPlaylist         = "--no-playlist"
	Output             = "-o"
	Progress           = "--progress"
	RemoteComponents   = "--remote-components"
	Version            = "--version"
	YTDLP              = "yt-dlp"
)

// Flag values with fixed prefixes.
const (
	DenoRuntimePrefix = "deno:"
	EJSComponent      = "ejs:github"
)

// Deno is the binary name used for PATH lookup.
const Deno = "deno"

// FFProbe/FFmpeg.
const (
	FFmpeg        = "ffmpeg"
	FFmpegVersion = "-version"
)
