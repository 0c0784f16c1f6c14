// Package downloads orchestrates yt-dlp to fetch audio from YouTube,
// escalating to browser cookies when bot detection trips.
package downloads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"autostepper/internal/cache"
	"autostepper/internal/command"
	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/errconsts"
	"autostepper/internal/models"
	"autostepper/internal/parsing"
	"autostepper/internal/tools"
	"autostepper/internal/utils/logging"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// PhaseType marks which yt-dlp invocation mode a phase uses.
type PhaseType string

const (
	PhaseMetadata PhaseType = "metadata"
	PhaseAudio    PhaseType = "audio"
)

// runFailure returns the error format for a phase attempt that never
// produced an exit status.
func (p PhaseType) runFailure(escalated bool) string {
	switch {
	case p == PhaseMetadata && escalated:
		return errconsts.YTDLPCookieRunFailure
	case p == PhaseMetadata:
		return errconsts.YTDLPRunFailure
	case escalated:
		return errconsts.DownloadCookieRunFailure
	default:
		return errconsts.DownloadRunFailure
	}
}

// failure returns the error format wrapping raw stderr of a terminal
// non-bot failure.
func (p PhaseType) failure() string {
	if p == PhaseMetadata {
		return errconsts.YTDLPError
	}
	return errconsts.DownloadFailure
}

// toolSet is the per-request tool discovery snapshot. Recomputed on every
// download, never cached across requests.
type toolSet struct {
	ytdlp         string
	deno          string
	cookieBrowser string
}

// Manager sequences a download request: URL validation, tool discovery,
// the metadata probe, the audio extraction and cache placement. Safe for
// concurrent use; requests share nothing but the tracker and cache dir.
type Manager struct {
	runner   command.Runner
	locator  *tools.Locator
	store    *cache.Gateway
	tracker  *StatusTracker
	settings models.DownloadSettings
}

// NewManager wires a Manager. Zero timeout settings fall back to the
// defaults.
func NewManager(runner command.Runner, locator *tools.Locator, store *cache.Gateway, tracker *StatusTracker, settings models.DownloadSettings) *Manager {
	if settings.MetaTimeout <= 0 {
		settings.MetaTimeout = consts.DefaultMetaTimeout
	}
	if settings.DownloadTimeout <= 0 {
		settings.DownloadTimeout = consts.DefaultDownloadTimeout
	}
	return &Manager{
		runner:   runner,
		locator:  locator,
		store:    store,
		tracker:  tracker,
		settings: settings,
	}
}

// Download fetches the audio track behind rawURL and returns its
// descriptor. Each call gets a fresh ID, so concurrent or repeated
// downloads of the same URL never collide on disk.
func (m *Manager) Download(ctx context.Context, rawURL string) (*models.DownloadResult, error) {
	if err := parsing.ValidateYouTubeURL(rawURL); err != nil {
		return nil, err
	}

	ytdlp, err := m.locator.FindYTDLP(ctx)
	if err != nil {
		return nil, err
	}

	t := toolSet{
		ytdlp:         ytdlp,
		deno:          m.locator.FindDeno(),
		cookieBrowser: m.settings.CookieBrowserOverride,
	}
	if t.cookieBrowser == "" {
		t.cookieBrowser = m.locator.FindCookieBrowser()
	}
	if t.deno == "" && t.cookieBrowser == "" {
		logging.W("Neither Deno nor browser cookies found, YouTube may block downloads")
	}

	songID := uuid.NewString()
	m.tracker.sendUpdate(models.StatusUpdate{
		SongID: songID,
		URL:    rawURL,
		Status: consts.DLStatusPending,
	})

	logging.I("Fetching metadata for: %s", rawURL)

	metaCtx, cancel := context.WithTimeout(ctx, m.settings.MetaTimeout)
	defer cancel()

	out, err := m.runPhase(metaCtx, PhaseMetadata, MetadataArgs(rawURL), t)
	if err != nil {
		return nil, m.fail(songID, rawURL, err)
	}

	var meta models.TrackMetadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, m.fail(songID, rawURL, fmt.Errorf(errconsts.MetadataParseFailure, err))
	}
	logging.I("Title: %s", meta.DisplayTitle())

	logging.I("Downloading audio...")
	m.tracker.sendUpdate(models.StatusUpdate{
		SongID: songID,
		URL:    rawURL,
		Title:  meta.DisplayTitle(),
		Status: consts.DLStatusDownloading,
	})

	dlCtx, cancel := context.WithTimeout(ctx, m.settings.DownloadTimeout)
	defer cancel()

	if _, err := m.runPhase(dlCtx, PhaseAudio, AudioArgs(rawURL, m.store.PathFor(songID)), t); err != nil {
		return nil, m.fail(songID, rawURL, err)
	}

	finalPath, err := m.store.Normalize(songID)
	if err != nil {
		return nil, m.fail(songID, rawURL, err)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return nil, m.fail(songID, rawURL, errors.New(errconsts.DownloadedFileNotFound))
	}

	logging.S(0, "Download complete: %.2f MB", float64(info.Size())/1024/1024)

	m.tracker.sendUpdate(models.StatusUpdate{
		SongID:   songID,
		URL:      rawURL,
		Title:    meta.DisplayTitle(),
		Status:   consts.DLStatusCompleted,
		FileSize: info.Size(),
	})

	return &models.DownloadResult{
		ID:          songID,
		Title:       meta.DisplayTitle(),
		Artist:      meta.Artist(),
		Duration:    meta.Duration,
		Thumbnail:   meta.Thumbnail,
		UploadDate:  parseUploadDate(meta.UploadDate),
		DownloadURL: consts.AudioURLScheme + songID,
		FileSize:    info.Size(),
	}, nil
}

// runPhase runs one yt-dlp phase through the shared escalation ladder: a
// primary attempt without cookies, then at most one retry with browser
// cookies when stderr classifies as bot detection. Returns stdout of the
// successful attempt.
func (m *Manager) runPhase(ctx context.Context, p PhaseType, base []string, t toolSet) ([]byte, error) {
	res, err := m.runner.Run(ctx, t.ytdlp, BuildArgs(base, t.deno, ""))
	if err != nil {
		return nil, runError(p, false, err)
	}

	if res.ExitCode != 0 && IsBotDetection(res.Stderr) && t.cookieBrowser != "" {
		logging.W("Bot detection on %s, retrying with %s cookies...", p, t.cookieBrowser)
		res, err = m.runner.Run(ctx, t.ytdlp, BuildArgs(base, t.deno, t.cookieBrowser))
		if err != nil {
			return nil, runError(p, true, err)
		}
	}

	if res.ExitCode != 0 {
		return nil, classifyFailure(p, res.Stderr, t.cookieBrowser != "")
	}
	return res.Stdout, nil
}

// fail pushes a failed status update and passes the error through.
func (m *Manager) fail(songID, rawURL string, err error) error {
	logging.E(0, "Download %q failed: %v", songID, err)
	m.tracker.sendUpdate(models.StatusUpdate{
		SongID: songID,
		URL:    rawURL,
		Status: consts.DLStatusFailed,
		Error:  err,
	})
	return err
}

// runError maps an attempt that never completed (spawn failure or context
// end) onto its user-facing message.
func runError(p PhaseType, escalated bool, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New(errconsts.DownloadTimedOut)
	}
	return fmt.Errorf(p.runFailure(escalated), err)
}

// classifyFailure maps a terminal nonzero exit onto its user-facing error.
// Bot detection carries a remediation hint chosen by whether a cookie
// escalation was possible; a missing JS runtime points at the Deno
// install; anything else keeps the tool's own stderr.
func classifyFailure(p PhaseType, stderr string, cookiesAvailable bool) error {
	if IsBotDetection(stderr) {
		return fmt.Errorf(errconsts.BotDetectionTriggered, botHint(cookiesAvailable))
	}
	if IsMissingJSRuntime(stderr) {
		return errors.New(errconsts.DenoNotFound)
	}
	return fmt.Errorf(p.failure(), stderr)
}

// parseUploadDate converts yt-dlp's YYYYMMDD upload date into plain
// YYYY-MM-DD form. Empty or unparseable input yields an empty string.
func parseUploadDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		logging.D(2, "Could not parse upload date %q: %v", raw, err)
		return ""
	}
	return t.Format(time.DateOnly)
}
