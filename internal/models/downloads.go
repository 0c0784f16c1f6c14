// Package models holds model structs used across autostepper.
package models

import (
	"time"

	"autostepper/internal/domain/consts"
)

// TrackMetadata is the subset of yt-dlp's JSON metadata document autostepper consumes.
type TrackMetadata struct {
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	Channel    string  `json:"channel"`
	Duration   float64 `json:"duration"`
	Thumbnail  string  `json:"thumbnail"`
	UploadDate string  `json:"upload_date"`
}

// Artist returns the display artist for the track: the uploader, falling back
// to the channel name, falling back to "Unknown".
func (m *TrackMetadata) Artist() string {
	switch {
	case m.Uploader != "":
		return m.Uploader
	case m.Channel != "":
		return m.Channel
	default:
		return "Unknown"
	}
}

// DisplayTitle returns the track title, or "Unknown" when absent.
func (m *TrackMetadata) DisplayTitle() string {
	if m.Title == "" {
		return "Unknown"
	}
	return m.Title
}

// DownloadResult is returned to the frontend after a completed download.
type DownloadResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Duration    float64 `json:"duration"`
	Thumbnail   string  `json:"thumbnail"`
	UploadDate  string  `json:"uploadDate,omitempty"`
	DownloadURL string  `json:"downloadUrl"`
	FileSize    int64   `json:"fileSize"`
}

// DownloadSettings carries per-manager download configuration.
type DownloadSettings struct {
	CookieBrowserOverride string
	MetaTimeout           time.Duration
	DownloadTimeout       time.Duration
}

// StatusUpdate captures a download's state change for the tracker.
type StatusUpdate struct {
	SongID   string
	URL      string
	Title    string
	Status   consts.DLStatus
	FileSize int64
	Error    error
}
