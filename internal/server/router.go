// Package server exposes downloads, the audio cache and tool checks over
// HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"autostepper/internal/contracts"
	"autostepper/internal/domain/consts"
	"autostepper/internal/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server bundles the dependencies the HTTP handlers need.
type Server struct {
	dl      contracts.Downloader
	tools   contracts.ToolChecker
	store   contracts.AudioStore
	counter contracts.DownloadCounter
}

// New returns a Server serving the given collaborators.
func New(dl contracts.Downloader, tools contracts.ToolChecker, store contracts.AudioStore, counter contracts.DownloadCounter) *Server {
	return &Server{dl: dl, tools: tools, store: store, counter: counter}
}

// Router assembles the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- API Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/download", s.handleDownload)
		r.Get("/audio/{songID}.mp3", s.handleServeAudio)
		r.Get("/audio/{songID}/base64", s.handleAudioBase64)
		r.Get("/health", s.handleHealth)
		r.Get("/dependencies", s.handleDependencies)
		r.Post("/cleanup", s.handleCleanup)
	})

	return r
}

// Start runs the HTTP server on addr until ctx ends, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.Router(),
		ReadTimeout: consts.ServerReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.S(0, "autostepper server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), consts.ServerShutdownTimeout)
	defer cancel()

	logging.I("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
