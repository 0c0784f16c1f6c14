package downloads

import (
	"autostepper/internal/domain/cmdaudio"
	"autostepper/internal/domain/consts"
)

// BuildArgs assembles a full yt-dlp argument list from a phase's base
// arguments. The base is copied, never mutated. A non-empty denoPath
// appends the JS challenge-solver flags; a non-empty cookieBrowser appends
// the browser cookie flag last. The order is fixed so identical inputs
// always produce identical commands.
func BuildArgs(base []string, denoPath, cookieBrowser string) []string {
	args := make([]string, 0, len(base)+6)
	args = append(args, base...)

	if denoPath != "" {
		args = append(args,
			cmdaudio.JSRuntimes, cmdaudio.DenoRuntimePrefix+denoPath,
			cmdaudio.RemoteComponents, cmdaudio.EJSComponent)
	}

	if cookieBrowser != "" {
		args = append(args, cmdaudio.CookiesFromBrowser, cookieBrowser)
	}

	return args
}

// MetadataArgs is the base argument set for the metadata probe: dump the
// video's JSON description, download nothing.
func MetadataArgs(rawURL string) []string {
	return []string{cmdaudio.DumpJSON, cmdaudio.NoDownload, rawURL}
}

// AudioArgs is the base argument set for extracting audio to outputPath.
func AudioArgs(rawURL, outputPath string) []string {
	args := make([]string, 0, 12)
	args = append(args,
		cmdaudio.ExtractAudio,
		cmdaudio.AudioFormat, consts.AudioFormat,
		cmdaudio.AudioQuality, consts.AudioQuality,
		cmdaudio.NoPlaylist,
		cmdaudio.MaxFilesize, consts.MaxFilesize,
		cmdaudio.Progress,
		cmdaudio.Output, outputPath,
		rawURL)

	return args
}
