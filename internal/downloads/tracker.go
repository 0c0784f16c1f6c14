package downloads

import (
	"context"
	"sync"

	"autostepper/internal/domain/consts"
	"autostepper/internal/models"
	"autostepper/internal/utils/logging"
)

// StatusTracker consumes per-download status updates and keeps a
// session-scoped completion count for the health report. Nothing is
// persisted; a restart starts the count over.
type StatusTracker struct {
	updates chan models.StatusUpdate
	done    chan struct{}

	mu        sync.Mutex
	completed int
}

// NewStatusTracker returns a tracker ready to Start.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		updates: make(chan models.StatusUpdate, 100),
		done:    make(chan struct{}),
	}
}

// Start starts update processing.
func (t *StatusTracker) Start(ctx context.Context) {
	go t.processUpdates(ctx)
}

// Stop stops update processing.
func (t *StatusTracker) Stop() {
	close(t.done)
}

// sendUpdate pushes one update into the processing channel.
func (t *StatusTracker) sendUpdate(u models.StatusUpdate) {
	if u.SongID == "" {
		logging.E(0, "Invalid status update, missing song ID: %+v", u)
		return
	}
	t.updates <- u
}

// processUpdates applies status updates until Stop or ctx end.
func (t *StatusTracker) processUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.done:
			return
		case u := <-t.updates:
			t.apply(u)
		}
	}
}

// apply records one status transition.
func (t *StatusTracker) apply(u models.StatusUpdate) {
	switch u.Status {
	case consts.DLStatusCompleted:
		t.mu.Lock()
		t.completed++
		t.mu.Unlock()
		logging.D(1, "Download %q finished: %q (%d bytes)", u.SongID, u.Title, u.FileSize)
	case consts.DLStatusFailed:
		logging.D(1, "Download %q failed for URL %q: %v", u.SongID, u.URL, u.Error)
	default:
		logging.D(2, "Download %q status: %s", u.SongID, u.Status)
	}
}

// CompletedCount returns the number of downloads completed since startup.
func (t *StatusTracker) CompletedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}
