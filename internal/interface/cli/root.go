package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripdeck/tripdeck/internal/core/api"
	"github.com/tripdeck/tripdeck/internal/core/config"
	"github.com/tripdeck/tripdeck/internal/core/session"
)

var (
	serverURL   string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tripdeck",
	Short: "Trip planner dashboard",
	Long: `tripdeck - a terminal dashboard for your trip planner

Browse trips, edit itineraries, activities, expenses and budgets against a
trip-planner backend, with a live budget summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (overrides config)")
}

// loadConfig loads the file config and applies the --server flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	return cfg, nil
}

// newClient builds the API client and session store shared by all commands.
func newClient(cfg *config.Config) (*api.Client, *session.Store, error) {
	dir, err := session.DefaultDir()
	if err != nil {
		return nil, nil, fmt.Errorf("locating config dir: %w", err)
	}
	store := session.NewStore(dir)
	return api.New(cfg.ServerURL, cfg.RequestTimeout, store), store, nil
}
