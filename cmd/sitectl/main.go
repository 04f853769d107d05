package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"vitrine-backend/internal/app"
	"vitrine-backend/internal/cache"
	"vitrine-backend/internal/config"
	"vitrine-backend/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	timeout time.Duration

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Operator tooling for the marketing site backend",
	Long: `sitectl works directly against the configured store (STORE_DRIVER,
MONGO_URI, MONGO_DB) using the same services as the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger = logging.New(os.Stderr, level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(adminCmd)
}

// openServices connects to the configured store. Outbound mail and sign-in
// are left disabled.
func openServices(ctx context.Context) (*app.Services, func(), error) {
	svc, _, cleanup, err := openServicesWithCache(ctx)
	return svc, cleanup, err
}

// openServicesWithCache also opens the API's response cache, so commands that
// write content can drop the cached listings.
func openServicesWithCache(ctx context.Context) (*app.Services, cache.Cache, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	repos, closeStore, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}
	cacheStore, closeCache, err := app.OpenCache(ctx, cfg, logger)
	if err != nil {
		_ = closeStore(context.Background())
		return nil, nil, nil, fmt.Errorf("open cache: %w", err)
	}
	cleanup := func() {
		if err := closeCache(); err != nil {
			logger.Warn("cache close failed", slog.String("error", err.Error()))
		}
		if err := closeStore(context.Background()); err != nil {
			logger.Warn("store close failed", slog.String("error", err.Error()))
		}
	}
	return app.NewServices(repos, cfg, app.Collaborators{}), cacheStore, cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
