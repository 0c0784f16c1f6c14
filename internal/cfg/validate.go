package cfg

import (
	"fmt"
	"net"
	"strings"

	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/keys"
	"autostepper/internal/utils/logging"

	"github.com/spf13/viper"
)

// verifySettings checks and normalizes user flag input before any command runs.
func verifySettings() error {
	validateLoggingLevel()

	if b := viper.GetString(keys.CookieBrowser); b != "" {
		lower := strings.ToLower(b)
		if !consts.ValidCookieBrowsers[lower] {
			return fmt.Errorf("invalid cookie browser %q", b)
		}
		viper.Set(keys.CookieBrowser, lower)
	}

	if addr := viper.GetString(keys.BindAddr); addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("invalid bind address %q: %w", addr, err)
		}
	}

	if t := viper.GetDuration(keys.MetaTimeout); t <= 0 {
		return fmt.Errorf("meta timeout must be positive, got %v", t)
	}
	if t := viper.GetDuration(keys.DownloadTimeout); t <= 0 {
		return fmt.Errorf("download timeout must be positive, got %v", t)
	}
	return nil
}

// validateLoggingLevel clamps the debug level into the supported 0 to 5 range.
func validateLoggingLevel() {
	l := viper.GetInt(keys.DebugLevel)
	if l < 0 {
		l = 0
	}

	if l > 5 {
		l = 5
	}

	logging.Level = l
}
