package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/haven/pkg/log"
	"github.com/sandevgo/haven/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Haven chat session",
	Long:  `Initializes storage, the model providers and the turn pipeline, then opens an interactive chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting haven")

		services, chat := NewServices(ctx)

		srv.StartServices(ctx, services)

		if err := chat.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("chat session ended with error")
		}
		if err := chat.Shutdown(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to close chat session")
		}

		stop()
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("haven has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
