package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hamzaessahbaoui/agent-tools/internal/config"
	"github.com/hamzaessahbaoui/agent-tools/pkg/tools"
)

// Version is set at build time.
var Version = "dev"

var (
	envFile string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "agent-tools",
	Short:         "Web search and report storage tools for AI agents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = cfg.NewLogger(cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

// toolSet builds the tools from the loaded configuration.
func toolSet() *tools.Set {
	return tools.New(tools.Options{
		SerperAPIKey:  cfg.SerperAPIKey,
		SerperBaseURL: cfg.SerperBaseURL,
		MongoURI:      cfg.MongoURI,
		Logger:        logger,
	})
}
