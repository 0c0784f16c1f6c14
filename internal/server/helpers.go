package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"autostepper/internal/domain/errconsts"
	"autostepper/internal/utils/logging"
)

// botDetectionPrefix matches terminal bot-detection error text.
var botDetectionPrefix = strings.TrimSuffix(errconsts.BotDetectionTriggered, "%s")

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.E(0, "Failed to encode JSON response: %v", err)
	}
}

// respondError writes the {"error": ...} body every failure shares.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// statusForError maps a download error onto an HTTP status: bad input and
// bot detection are the caller's problem, a timeout gets 504, everything
// else is a server-side failure.
func statusForError(err error) int {
	msg := err.Error()
	switch {
	case msg == errconsts.DownloadTimedOut:
		return http.StatusGatewayTimeout
	case msg == errconsts.InvalidURLFormat,
		msg == errconsts.NoHostInURL,
		msg == errconsts.NotAYouTubeURL:
		return http.StatusBadRequest
	case strings.HasPrefix(msg, botDetectionPrefix):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
