package cfg

import (
	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags initializes user flag settings related to the core program. E.g. logging level.
func initProgramFlags(rootCmd *cobra.Command) error {

	// Cache directory
	rootCmd.PersistentFlags().String(keys.CacheDir, "", "Cache directory override (default: the platform user cache directory)")
	if err := viper.BindPFlag(keys.CacheDir, rootCmd.PersistentFlags().Lookup(keys.CacheDir)); err != nil {
		return err
	}

	// Cookies
	rootCmd.PersistentFlags().String(keys.CookieBrowser, "", "Browser to pull YouTube cookies from when bot detection trips (e.g. 'firefox')")
	if err := viper.BindPFlag(keys.CookieBrowser, rootCmd.PersistentFlags().Lookup(keys.CookieBrowser)); err != nil {
		return err
	}

	// Server listen address
	rootCmd.PersistentFlags().String(keys.BindAddr, consts.DefaultBindAddr, "Listen address for the local server (host:port)")
	if err := viper.BindPFlag(keys.BindAddr, rootCmd.PersistentFlags().Lookup(keys.BindAddr)); err != nil {
		return err
	}

	// yt-dlp phase timeouts
	rootCmd.PersistentFlags().Duration(keys.MetaTimeout, consts.DefaultMetaTimeout, "Timeout for the metadata fetch phase")
	if err := viper.BindPFlag(keys.MetaTimeout, rootCmd.PersistentFlags().Lookup(keys.MetaTimeout)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Duration(keys.DownloadTimeout, consts.DefaultDownloadTimeout, "Timeout for the audio download phase")
	if err := viper.BindPFlag(keys.DownloadTimeout, rootCmd.PersistentFlags().Lookup(keys.DownloadTimeout)); err != nil {
		return err
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}
