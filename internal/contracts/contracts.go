// Package contracts defines interfaces that decouple the HTTP and CLI
// layers from the download, tool probe and cache implementations.
package contracts

import (
	"context"

	"autostepper/internal/models"
)

// Downloader runs one complete download request.
type Downloader interface {
	Download(ctx context.Context, rawURL string) (*models.DownloadResult, error)
}

// ToolChecker probes the external tools downloads depend on.
type ToolChecker interface {
	Status(ctx context.Context) models.DependencyStatus
	YTDLPVersion(ctx context.Context) string
}

// AudioStore resolves, reads and sweeps cached audio files.
type AudioStore interface {
	Dir() string
	Resolve(id string) (string, error)
	ReadBase64(id string) (string, error)
	Cleanup() (int, error)
}

// DownloadCounter reports how many downloads completed this session.
type DownloadCounter interface {
	CompletedCount() int
}
