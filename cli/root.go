// Package cli holds the armory command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/junaidrashid-git/armory-api/config"
	"github.com/junaidrashid-git/armory-api/logger"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/junaidrashid-git/armory-api/store/backend"
	"github.com/spf13/cobra"
)

var Version = "dev"

var envFile string

// NewRootCmd builds the command tree. Running the root alone serves the API.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "armory",
		Short:         "Armory store API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional env file loaded before the environment")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(populateCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads and validates config, installs the logger and opens the
// migrated store.
func bootstrap(ctx context.Context) (*config.Config, store.Store, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel, cfg.Production)

	st, err := backend.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, st, nil
}
