package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kevinxiao27/revlist/internal/config"
	"github.com/kevinxiao27/revlist/internal/shell"
	"github.com/kevinxiao27/revlist/versioned"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "revlist",
		Short: "Interactive integer list with undo and redo",
		Long: `revlist keeps every edit of an integer list as a snapshot.
u steps back, r steps forward, and editing after u drops the undone steps.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if err := config.ReadFile(v, configFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

			in, err := shell.NewLineReader(cfg, os.Stdin, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer in.Close()

			logger.Debug("starting shell", "separator", cfg.Separator, "history_file", cfg.HistoryFile)
			err = shell.New(versioned.New[int](), in, cmd.OutOrStdout(), cfg, logger).Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				logger.Debug("shell stopped by signal")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
