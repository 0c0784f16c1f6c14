package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/errconsts"
	"autostepper/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TestHandleDownloadSuccess returns the download result as JSON ----------------------------------------------------
func TestHandleDownloadSuccess(t *testing.T) {
	t.Parallel()

	want := &models.DownloadResult{
		ID:          uuid.NewString(),
		Title:       "Never Gonna Give You Up",
		Artist:      "Rick Astley",
		Duration:    213.5,
		UploadDate:  "2009-10-25",
		DownloadURL: "autostepper://audio/abc",
		FileSize:    4096,
	}
	dl := &mockDownloader{result: want}
	s := New(dl, &mockToolChecker{}, &mockAudioStore{}, &mockCounter{})

	body := `{"url": "  https://www.youtube.com/watch?v=dQw4w9WgXcQ  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/download", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleDownload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d, body %q", rec.Code, http.StatusOK, rec.Body.String())
	}
	if dl.calls != 1 {
		t.Fatalf("Download called %d times, want 1", dl.calls)
	}
	if dl.gotURL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Fatalf("URL not trimmed: got %q", dl.gotURL)
	}

	var got models.DownloadResult
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got != *want {
		t.Fatalf("result mismatch:\n got %+v\nwant %+v", got, *want)
	}
}

// TestHandleDownloadBadRequests rejects bad bodies before any download starts.
func TestHandleDownloadBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"invalid JSON", `{`, "invalid JSON body"},
		{"missing url", `{}`, errconsts.MissingURLParameter},
		{"blank url", `{"url": "   "}`, errconsts.MissingURLParameter},
	}

	for _, tc := range tests {
		dl := &mockDownloader{}
		s := New(dl, &mockToolChecker{}, &mockAudioStore{}, &mockCounter{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/download", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()

		s.handleDownload(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: unexpected status: got %d want %d", tc.name, rec.Code, http.StatusBadRequest)
		}
		if got := decodeError(t, rec); got != tc.wantMsg {
			t.Fatalf("%s: error mismatch: got %q want %q", tc.name, got, tc.wantMsg)
		}
		if dl.calls != 0 {
			t.Fatalf("%s: Download should not run, called %d times", tc.name, dl.calls)
		}
	}
}

// TestHandleDownloadErrorStatuses maps download errors onto HTTP statuses ------------------------------------------
func TestHandleDownloadErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err        error
		wantStatus int
	}{
		{errors.New(errconsts.InvalidURLFormat), http.StatusBadRequest},
		{errors.New(errconsts.NoHostInURL), http.StatusBadRequest},
		{errors.New(errconsts.NotAYouTubeURL), http.StatusBadRequest},
		{fmt.Errorf(errconsts.BotDetectionTriggered, errconsts.HintNoCookies), http.StatusBadRequest},
		{fmt.Errorf(errconsts.BotDetectionTriggered, errconsts.HintCookiesTried), http.StatusBadRequest},
		{errors.New(errconsts.DownloadTimedOut), http.StatusGatewayTimeout},
		{fmt.Errorf(errconsts.YTDLPError, "ERROR: Video unavailable"), http.StatusInternalServerError},
		{fmt.Errorf(errconsts.DownloadFailure, "ERROR: boom"), http.StatusInternalServerError},
		{errors.New(errconsts.DenoNotFound), http.StatusInternalServerError},
		{errors.New(errconsts.YTDLPNotFound), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		s := New(&mockDownloader{err: tc.err}, &mockToolChecker{}, &mockAudioStore{}, &mockCounter{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/download",
			strings.NewReader(`{"url": "https://www.youtube.com/watch?v=x"}`))
		rec := httptest.NewRecorder()

		s.handleDownload(rec, req)

		if rec.Code != tc.wantStatus {
			t.Fatalf("error %q: unexpected status: got %d want %d", tc.err, rec.Code, tc.wantStatus)
		}
		if got := decodeError(t, rec); got != tc.err.Error() {
			t.Fatalf("error %q: body mismatch: got %q", tc.err, got)
		}
	}
}

// TestHandleServeAudio streams the resolved file -------------------------------------------------------------------
func TestHandleServeAudio(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	content := []byte("ID3 fake audio bytes")
	path := filepath.Join(t.TempDir(), id+".mp3")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store := &mockAudioStore{resolveFn: func(gotID string) (string, error) {
		if gotID != id {
			t.Fatalf("songID mismatch: got %q want %q", gotID, id)
		}
		return path, nil
	}}
	s := New(&mockDownloader{}, &mockToolChecker{}, store, &mockCounter{})

	rec := httptest.NewRecorder()
	s.handleServeAudio(rec, audioRequest(id, "/api/v1/audio/"+id+".mp3"))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, body %q", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != consts.AudioMIMEType {
		t.Fatalf("content type mismatch: got %q want %q", got, consts.AudioMIMEType)
	}
	if rec.Body.String() != string(content) {
		t.Fatalf("body mismatch: got %q", rec.Body.String())
	}
}

func TestHandleServeAudio_NotFound(t *testing.T) {
	t.Parallel()

	store := &mockAudioStore{resolveFn: func(string) (string, error) {
		return "", errors.New(errconsts.AudioFileNotFound)
	}}
	s := New(&mockDownloader{}, &mockToolChecker{}, store, &mockCounter{})

	id := uuid.NewString()
	rec := httptest.NewRecorder()
	s.handleServeAudio(rec, audioRequest(id, "/api/v1/audio/"+id+".mp3"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeError(t, rec); got != errconsts.AudioFileNotFound {
		t.Fatalf("error mismatch: got %q", got)
	}
}

// TestHandleAudioBase64 returns the encoded payload ----------------------------------------------------------------
func TestHandleAudioBase64(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	store := &mockAudioStore{base64Fn: func(gotID string) (string, error) {
		if gotID != id {
			t.Fatalf("songID mismatch: got %q want %q", gotID, id)
		}
		return "SUQzIGZha2U=", nil
	}}
	s := New(&mockDownloader{}, &mockToolChecker{}, store, &mockCounter{})

	rec := httptest.NewRecorder()
	s.handleAudioBase64(rec, audioRequest(id, "/api/v1/audio/"+id+"/base64"))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}

	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["id"] != id || got["data"] != "SUQzIGZha2U=" {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestHandleAudioBase64_NotFound(t *testing.T) {
	t.Parallel()

	store := &mockAudioStore{base64Fn: func(string) (string, error) {
		return "", errors.New(errconsts.AudioFileNotFound)
	}}
	s := New(&mockDownloader{}, &mockToolChecker{}, store, &mockCounter{})

	id := uuid.NewString()
	rec := httptest.NewRecorder()
	s.handleAudioBase64(rec, audioRequest(id, "/api/v1/audio/"+id+"/base64"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

// TestHandleHealth reports tool availability -----------------------------------------------------------------------
func TestHandleHealth_AllPresent(t *testing.T) {
	t.Parallel()

	tc := &mockToolChecker{
		version: "2025.08.22",
		status: models.DependencyStatus{
			YTDLP:          true,
			YTDLPPath:      "yt-dlp",
			Deno:           true,
			DenoPath:       "/usr/local/bin/deno",
			FFmpeg:         true,
			CookiesBrowser: "firefox",
		},
	}
	s := New(&mockDownloader{}, tc, &mockAudioStore{dir: "/tmp/audio"}, &mockCounter{n: 3})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}

	var got models.HealthReport
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := models.HealthReport{
		Status:         "ok",
		YTDLPVersion:   "2025.08.22",
		FFmpeg:         "available",
		Deno:           "/usr/local/bin/deno",
		CookiesBrowser: "firefox",
		AudioDir:       "/tmp/audio",
		DownloadsCount: 3,
	}
	if got != want {
		t.Fatalf("report mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestHandleHealth_NothingFound(t *testing.T) {
	t.Parallel()

	s := New(&mockDownloader{}, &mockToolChecker{}, &mockAudioStore{dir: "/tmp/audio"}, &mockCounter{})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var got models.HealthReport
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := models.HealthReport{
		Status:         "ok",
		YTDLPVersion:   "not found",
		FFmpeg:         "not found",
		Deno:           "NOT FOUND - required for YouTube!",
		CookiesBrowser: "not configured (using Deno)",
		AudioDir:       "/tmp/audio",
		DownloadsCount: 0,
	}
	if got != want {
		t.Fatalf("report mismatch:\n got %+v\nwant %+v", got, want)
	}
}

// TestHandleDependencies returns the raw probe snapshot ------------------------------------------------------------
func TestHandleDependencies(t *testing.T) {
	t.Parallel()

	status := models.DependencyStatus{
		YTDLP:          true,
		YTDLPPath:      "/usr/bin/yt-dlp",
		FFmpeg:         true,
		CookiesBrowser: "brave",
	}
	s := New(&mockDownloader{}, &mockToolChecker{status: status}, &mockAudioStore{}, &mockCounter{})

	rec := httptest.NewRecorder()
	s.handleDependencies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dependencies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}

	var got models.DependencyStatus
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got != status {
		t.Fatalf("status mismatch:\n got %+v\nwant %+v", got, status)
	}
}

// TestHandleCleanup reports deletions and failures -----------------------------------------------------------------
func TestHandleCleanup(t *testing.T) {
	t.Parallel()

	s := New(&mockDownloader{}, &mockToolChecker{}, &mockAudioStore{cleanupN: 7}, &mockCounter{})

	rec := httptest.NewRecorder()
	s.handleCleanup(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cleanup", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}

	var got map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["deleted"] != 7 {
		t.Fatalf("deleted count mismatch: got %d want 7", got["deleted"])
	}
}

func TestHandleCleanup_Error(t *testing.T) {
	t.Parallel()

	store := &mockAudioStore{cleanupErr: errors.New("disk on fire")}
	s := New(&mockDownloader{}, &mockToolChecker{}, store, &mockCounter{})

	rec := httptest.NewRecorder()
	s.handleCleanup(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cleanup", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusInternalServerError)
	}
}

// TestRouterRoutes drives requests through the full chi tree -------------------------------------------------------
func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	content := []byte("ID3 fake audio bytes")
	path := filepath.Join(t.TempDir(), id+".mp3")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store := &mockAudioStore{
		dir: "/tmp/audio",
		resolveFn: func(gotID string) (string, error) {
			// The route pattern must strip the .mp3 suffix from the param.
			if gotID != id {
				return "", fmt.Errorf("unexpected songID %q", gotID)
			}
			return path, nil
		},
		base64Fn: func(string) (string, error) { return "AAAA", nil },
	}
	router := New(&mockDownloader{}, &mockToolChecker{}, store, &mockCounter{}).Router()

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/api/v1/audio/" + id + ".mp3", http.StatusOK},
		{http.MethodGet, "/api/v1/audio/" + id + "/base64", http.StatusOK},
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/api/v1/dependencies", http.StatusOK},
		{http.MethodPost, "/api/v1/cleanup", http.StatusOK},
		{http.MethodGet, "/api/v1/cleanup", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%s %s: unexpected status: got %d want %d, body %q",
				tc.method, tc.target, rec.Code, tc.wantStatus, rec.Body.String())
		}
	}
}

// ****** Private ********************************************************************************************************

type mockDownloader struct {
	calls  int
	gotURL string
	result *models.DownloadResult
	err    error
}

func (m *mockDownloader) Download(_ context.Context, rawURL string) (*models.DownloadResult, error) {
	m.calls++
	m.gotURL = rawURL
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		panic("Download not implemented")
	}
	return m.result, nil
}

type mockToolChecker struct {
	status  models.DependencyStatus
	version string
}

func (m *mockToolChecker) Status(context.Context) models.DependencyStatus {
	return m.status
}

func (m *mockToolChecker) YTDLPVersion(context.Context) string {
	return m.version
}

type mockAudioStore struct {
	dir        string
	resolveFn  func(id string) (string, error)
	base64Fn   func(id string) (string, error)
	cleanupN   int
	cleanupErr error
}

func (m *mockAudioStore) Dir() string {
	return m.dir
}

func (m *mockAudioStore) Resolve(id string) (string, error) {
	if m.resolveFn == nil {
		panic("Resolve not implemented")
	}
	return m.resolveFn(id)
}

func (m *mockAudioStore) ReadBase64(id string) (string, error) {
	if m.base64Fn == nil {
		panic("ReadBase64 not implemented")
	}
	return m.base64Fn(id)
}

func (m *mockAudioStore) Cleanup() (int, error) {
	return m.cleanupN, m.cleanupErr
}

type mockCounter struct {
	n int
}

func (m *mockCounter) CompletedCount() int {
	return m.n
}

// audioRequest builds a GET request carrying songID in the chi route context.
func audioRequest(songID, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("songID", songID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeError extracts the message from an {"error": ...} response body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body["error"]
}
