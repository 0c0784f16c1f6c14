package cfg

import (
	"context"
	"encoding/json"
	"fmt"

	"autostepper/internal/cache"
	"autostepper/internal/command"
	"autostepper/internal/domain/keys"
	"autostepper/internal/domain/paths"
	"autostepper/internal/downloads"
	"autostepper/internal/models"
	"autostepper/internal/server"
	"autostepper/internal/tools"
	"autostepper/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// appDeps bundles the constructed application services for a command run.
type appDeps struct {
	locator *tools.Locator
	store   *cache.Gateway
	tracker *downloads.StatusTracker
	manager *downloads.Manager
}

// buildApp wires the download pipeline against the audio cache directory.
func buildApp() (*appDeps, error) {
	store, err := cache.New(paths.AudioDir)
	if err != nil {
		return nil, err
	}

	runner := command.ExecRunner{}
	locator := tools.NewLocator(runner)
	tracker := downloads.NewStatusTracker()

	manager := downloads.NewManager(runner, locator, store, tracker, models.DownloadSettings{
		CookieBrowserOverride: viper.GetString(keys.CookieBrowser),
		MetaTimeout:           viper.GetDuration(keys.MetaTimeout),
		DownloadTimeout:       viper.GetDuration(keys.DownloadTimeout),
	})

	return &appDeps{
		locator: locator,
		store:   store,
		tracker: tracker,
		manager: manager,
	}, nil
}

// serveCmd runs the local HTTP server until interrupted.
func serveCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local audio download server",
		Long:  "Serve the download, audio and health endpoints over HTTP until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			app.tracker.Start(ctx)
			defer app.tracker.Stop()

			srv := server.New(app.manager, app.locator, app.store, app.tracker)
			return srv.Start(ctx, viper.GetString(keys.BindAddr))
		},
	}
}

// downloadCmd downloads a single YouTube URL as MP3 and prints the result.
func downloadCmd(ctx context.Context) *cobra.Command {
	var url string

	dlCmd := &cobra.Command{
		Use:   "download",
		Short: "Download audio from a YouTube URL",
		Long:  "Download a single YouTube video's audio as MP3 into the cache and print the result as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return fmt.Errorf("must enter a URL")
			}

			app, err := buildApp()
			if err != nil {
				return err
			}

			app.tracker.Start(ctx)
			defer app.tracker.Stop()

			result, err := app.manager.Download(ctx, url)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	dlCmd.Flags().StringVarP(&url, "url", "u", "", "YouTube video URL")

	return dlCmd
}

// depsCmd reports which external programs were found.
func depsCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external dependencies",
		Long:  "Probe for yt-dlp, Deno, FFmpeg and browser cookie stores and print the results as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			locator := tools.NewLocator(command.ExecRunner{})
			return printJSON(locator.Status(ctx))
		},
	}
}

// resolveCmd prints the cached audio path for a song ID.
func resolveCmd() *cobra.Command {
	var id string

	resCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a song ID to its cached file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("must enter a song ID")
			}

			store, err := cache.New(paths.AudioDir)
			if err != nil {
				return err
			}

			path, err := store.Resolve(id)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	resCmd.Flags().StringVarP(&id, "id", "i", "", "Song ID (the download UUID)")

	return resCmd
}

// cleanupCmd removes all cached audio files.
func cleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete all cached audio files",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cache.New(paths.AudioDir)
			if err != nil {
				return err
			}

			n, err := store.Cleanup()
			if err != nil {
				return err
			}
			logging.S(0, "Cleanup complete, removed %d audio files", n)
			return nil
		},
	}
}

// cookiesCmd inspects browser cookie stores for a site's cookies.
func cookiesCmd() *cobra.Command {
	var url string

	ckCmd := &cobra.Command{
		Use:   "cookies",
		Short: "Inspect browser cookie stores",
		Long:  "List detected browser cookie stores and how many valid cookies each holds for the given site.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := tools.CookieStoreReport(url)
			if err != nil {
				return err
			}
			return printJSON(reports)
		},
	}

	ckCmd.Flags().StringVarP(&url, "url", "u", "https://www.youtube.com", "Site to count matching cookies for")

	return ckCmd
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
