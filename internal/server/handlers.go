package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/errconsts"
	"autostepper/internal/models"

	"github.com/go-chi/chi/v5"
)

// downloadRequest is the POST /download body.
type downloadRequest struct {
	URL string `json:"url"`
}

// handleDownload runs a full download and returns its descriptor.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, errconsts.MissingURLParameter)
		return
	}

	result, err := s.dl.Download(r.Context(), req.URL)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleServeAudio streams a cached MP3.
func (s *Server) handleServeAudio(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "songID")

	path, err := s.store.Resolve(songID)
	if err != nil {
		respondError(w, http.StatusNotFound, errconsts.AudioFileNotFound)
		return
	}

	w.Header().Set("Content-Type", consts.AudioMIMEType)
	http.ServeFile(w, r, path)
}

// handleAudioBase64 returns a cached MP3 base64-encoded.
func (s *Server) handleAudioBase64(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "songID")

	data, err := s.store.ReadBase64(songID)
	if err != nil {
		respondError(w, http.StatusNotFound, errconsts.AudioFileNotFound)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"id": songID, "data": data})
}

// handleHealth reports tool availability in human-readable form plus the
// session download count.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.tools.Status(r.Context())

	report := models.HealthReport{
		Status:         "ok",
		YTDLPVersion:   "not found",
		FFmpeg:         "not found",
		Deno:           "NOT FOUND - required for YouTube!",
		CookiesBrowser: "not configured (using Deno)",
		AudioDir:       s.store.Dir(),
		DownloadsCount: s.counter.CompletedCount(),
	}
	if v := s.tools.YTDLPVersion(r.Context()); v != "" {
		report.YTDLPVersion = v
	}
	if st.FFmpeg {
		report.FFmpeg = "available"
	}
	if st.Deno {
		report.Deno = st.DenoPath
	}
	if st.CookiesBrowser != "" {
		report.CookiesBrowser = st.CookiesBrowser
	}

	respondJSON(w, http.StatusOK, report)
}

// handleDependencies returns the raw dependency snapshot.
func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.tools.Status(r.Context()))
}

// handleCleanup sweeps the audio cache and reports the number removed.
func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Cleanup()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"deleted": count})
}
