package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"medvirkning/internal/platform/config"
	"medvirkning/internal/platform/logger"
	"medvirkning/internal/platform/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "ismanglendemedvirkning",
		Short:         "Assessments of missing participation in sick leave follow-up",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env", ".env.local"}, "Optional env files loaded before the environment is parsed")

	load := func() (config.Config, error) {
		cfg, err := config.FromEnv(envFiles...)
		if err != nil {
			return config.Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations, then serve HTTP, cronjobs and the identhendelse consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, logger.New(cfg.LogLevel))
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)
			db, err := postgres.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.InfoContext(cmd.Context(), "migrations applied")
			return nil
		},
	}

	root.AddCommand(serve, migrate)
	// serve is the default when no subcommand is given.
	root.RunE = serve.RunE
	return root
}
