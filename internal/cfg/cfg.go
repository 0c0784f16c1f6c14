// Package cfg provides configuration and command-line interface setup for autostepper.
package cfg

import (
	"context"
	"fmt"
	"strings"

	"autostepper/internal/domain/consts"
	"autostepper/internal/domain/keys"
	"autostepper/internal/domain/paths"
	"autostepper/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "autostepper",
	Short: "Autostepper downloads YouTube audio as MP3 for local playback.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := verifySettings(); err != nil {
			return err
		}
		if err := paths.InitAppDirs(viper.GetString(keys.CacheDir)); err != nil {
			return err
		}
		if err := logging.SetupLogging(paths.LogFilePath); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// InitCommands initializes all commands and their flags.
func InitCommands(ctx context.Context) error {
	viper.SetEnvPrefix(consts.AppName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // AUTOSTEPPER_CACHE_DIR maps to "cache-dir"
	viper.AutomaticEnv()

	if err := initProgramFlags(rootCmd); err != nil {
		return err
	}

	rootCmd.AddCommand(
		serveCmd(ctx),
		downloadCmd(ctx),
		depsCmd(ctx),
		resolveCmd(),
		cleanupCmd(),
		cookiesCmd(),
	)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}
