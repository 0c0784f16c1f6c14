// Package paths initializes autostepper's filepaths, directories, etc.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"autostepper/internal/domain/consts"
)

const (
	logFile = "autostepper.log"
)

// File and directory path strings.
var (
	CacheDir    string
	AudioDir    string
	LogFilePath string
)

// InitAppDirs initializes necessary program directories and filepaths.
// An empty cacheDirOverride selects the platform user cache directory.
func InitAppDirs(cacheDirOverride string) error {
	if cacheDirOverride != "" {
		CacheDir = filepath.Join(cacheDirOverride, consts.AppName)
	} else {
		userCacheDir, err := os.UserCacheDir()
		if err != nil {
			return errors.New("failed to get user cache directory")
		}
		CacheDir = filepath.Join(userCacheDir, consts.AppName)
	}

	// Audio cache dir <cache>/autostepper/audio
	AudioDir = filepath.Join(CacheDir, consts.AudioDirName)
	if _, err := os.Stat(AudioDir); os.IsNotExist(err) {
		if err := os.MkdirAll(AudioDir, consts.PermsAudioDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	LogFilePath = filepath.Join(CacheDir, logFile)
	return nil
}
