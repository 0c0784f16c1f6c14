// Package tools locates the external programs autostepper depends on
// (yt-dlp, Deno, FFmpeg) and detects browser cookie stores.
package tools

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"autostepper/internal/command"
	"autostepper/internal/domain/cmdaudio"
	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/errconsts"
	"autostepper/internal/models"
	"autostepper/internal/utils/logging"
)

// Locator probes for external tools. Probes are cheap and rerun on every
// call so a tool installed mid-session is picked up without a restart.
type Locator struct {
	runner  command.Runner
	homeDir string
}

// NewLocator returns a Locator resolving home-relative candidate paths
// against the current user's home directory.
func NewLocator(runner command.Runner) *Locator {
	home, err := os.UserHomeDir()
	if err != nil {
		logging.D(1, "Could not determine home directory: %v", err)
	}
	return &Locator{runner: runner, homeDir: home}
}

// FindYTDLP returns the first yt-dlp candidate that can be spawned. The
// probe runs "--version" but only spawnability counts, not the exit code.
func (l *Locator) FindYTDLP(ctx context.Context) (string, error) {
	for _, candidate := range consts.YtDLPCandidates {
		if _, err := l.runner.Run(ctx, candidate, []string{cmdaudio.Version}); err == nil {
			logging.D(2, "Found yt-dlp at %q", candidate)
			return candidate, nil
		}
	}
	return "", errors.New(errconsts.YTDLPNotFound)
}

// FindDeno returns the path of a Deno binary, or an empty string when none
// exists. Relative candidates are joined onto the home directory, and PATH
// lookup is the last resort.
func (l *Locator) FindDeno() string {
	for _, candidate := range consts.DenoCandidates {
		path := candidate
		if !filepath.IsAbs(path) {
			if l.homeDir == "" {
				continue
			}
			path = filepath.Join(l.homeDir, candidate)
		}
		if _, err := os.Stat(path); err == nil {
			logging.D(2, "Found Deno at %q", path)
			return path
		}
	}
	if path, err := exec.LookPath(cmdaudio.Deno); err == nil {
		logging.D(2, "Found Deno on PATH at %q", path)
		return path
	}
	return ""
}

// FindCookieBrowser returns the name of the first browser in preference
// order whose cookie store exists on disk, or an empty string. Only
// existence is checked, store contents are never opened.
func (l *Locator) FindCookieBrowser() string {
	if l.homeDir == "" {
		return ""
	}
	for _, browser := range consts.CookieBrowserOrder {
		for _, rel := range consts.CookieStorePaths[browser] {
			info, err := os.Stat(filepath.Join(l.homeDir, rel))
			if err != nil {
				continue
			}
			// Firefox keeps per-profile stores, so the profiles
			// directory existing is enough.
			if browser == consts.BrowserFirefox && !info.IsDir() {
				continue
			}
			logging.D(2, "Found %s cookie store at %q", browser, rel)
			return browser
		}
	}
	return ""
}

// CheckFFmpeg reports whether FFmpeg can be spawned from PATH.
func (l *Locator) CheckFFmpeg(ctx context.Context) bool {
	_, err := l.runner.Run(ctx, cmdaudio.FFmpeg, []string{cmdaudio.FFmpegVersion})
	return err == nil
}

// YTDLPVersion returns the version string yt-dlp reports, or an empty
// string when no candidate runs successfully.
func (l *Locator) YTDLPVersion(ctx context.Context) string {
	for _, candidate := range consts.YtDLPCandidates {
		res, err := l.runner.Run(ctx, candidate, []string{cmdaudio.Version})
		if err == nil && res.ExitCode == 0 {
			return strings.TrimSpace(string(res.Stdout))
		}
	}
	return ""
}

// Status probes every tool and reports availability. It never fails;
// missing tools simply show up as absent.
func (l *Locator) Status(ctx context.Context) models.DependencyStatus {
	var s models.DependencyStatus
	if path, err := l.FindYTDLP(ctx); err == nil {
		s.YTDLP = true
		s.YTDLPPath = path
	}
	if path := l.FindDeno(); path != "" {
		s.Deno = true
		s.DenoPath = path
	}
	s.FFmpeg = l.CheckFFmpeg(ctx)
	s.CookiesBrowser = l.FindCookieBrowser()
	return s
}
