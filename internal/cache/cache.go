// Package cache manages the on-disk audio cache, one MP3 per download,
// named by the download's UUID.
package cache

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/errconsts"
	"autostepper/internal/utils/logging"

	"github.com/google/uuid"
)

// altExts are the extensions yt-dlp most often writes when MP3
// postprocessing is unavailable, checked before the directory scan.
var altExts = [...]string{".m4a", ".webm"}

// Gateway is the single access point for cached audio files. Lookups
// validate the ID before touching the filesystem, so callers can pass
// request input straight through.
type Gateway struct {
	dir string
}

// New creates the audio directory if needed and returns a Gateway over it.
func New(dir string) (*Gateway, error) {
	if err := os.MkdirAll(dir, consts.PermsAudioDir); err != nil {
		return nil, fmt.Errorf("failed to create audio directory %q: %w", dir, err)
	}
	return &Gateway{dir: dir}, nil
}

// Dir returns the audio directory path.
func (g *Gateway) Dir() string { return g.dir }

// PathFor returns the cache path for id without checking existence.
func (g *Gateway) PathFor(id string) string {
	return filepath.Join(g.dir, id+consts.AudioExt)
}

// validateID rejects anything that is not a UUID, which keeps arbitrary
// request input from reaching the filesystem as a path element.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf(errconsts.InvalidSongID, id)
	}
	return nil
}

// Resolve validates id and returns the cached file's path, erroring when
// no such file exists.
func (g *Gateway) Resolve(id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	path := g.PathFor(id)
	if _, err := os.Stat(path); err != nil {
		return "", errors.New(errconsts.AudioFileNotFound)
	}
	return path, nil
}

// Read returns the raw bytes of the cached file for id.
func (g *Gateway) Read(id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(g.PathFor(id))
	if err != nil {
		return nil, fmt.Errorf(errconsts.AudioReadFailure, err)
	}
	return data, nil
}

// ReadBase64 returns the cached file for id encoded as standard base64.
func (g *Gateway) ReadBase64(id string) (string, error) {
	data, err := g.Read(id)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Normalize ensures the finished download for id sits at "<id>.mp3".
// yt-dlp writes "<id>.m4a" or "<id>.webm" when MP3 postprocessing is
// unavailable; those are checked first, then the directory is scanned
// for any other extension with the same stem. Returns the final path.
func (g *Gateway) Normalize(id string) (string, error) {
	path := g.PathFor(id)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	base := strings.TrimSuffix(path, consts.AudioExt)
	for _, ext := range altExts {
		alt := base + ext
		if _, err := os.Stat(alt); err != nil {
			continue
		}
		return g.rename(alt, path)
	}

	entries, err := os.ReadDir(g.dir)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read audio directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.TrimSuffix(name, filepath.Ext(name)) != id {
			continue
		}
		return g.rename(filepath.Join(g.dir, name), path)
	}
	return "", errors.New(errconsts.DownloadedFileNotFound)
}

// rename moves src into place at dst, returning dst.
func (g *Gateway) rename(src, dst string) (string, error) {
	logging.D(1, "Renaming %q to %q", src, dst)
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("failed to rename %q: %w", src, err)
	}
	return dst, nil
}

// Cleanup removes every MP3 directly under the audio directory and
// returns how many were deleted. Files that fail to delete are skipped.
func (g *Gateway) Cleanup() (int, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read audio directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != consts.AudioExt {
			continue
		}
		path := filepath.Join(g.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logging.W("Failed to remove %q: %v", path, err)
			continue
		}
		count++
	}
	logging.I("Removed %d audio files from %q", count, g.dir)
	return count, nil
}
