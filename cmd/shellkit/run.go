package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/shellkit/internal/commands"
	"github.com/sandevgo/shellkit/internal/config"
	"github.com/sandevgo/shellkit/pkg/console"
	"github.com/sandevgo/shellkit/pkg/log"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console",
	Long:  `Starts the read-dispatch loop with the built-in command set. The console owns stdin and stdout until it exits on end-of-input, interrupt, or the quit command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		loadDotenv(ctx)
		cfg := config.NewAppConfig(ctx)

		greeting, err := cfg.ResolveGreeting()
		if err != nil {
			return err
		}

		con, err := console.New(console.Config{
			Prompt:   cfg.Prompt,
			Greeting: greeting,
		})
		if err != nil {
			return fmt.Errorf("init console: %w", err)
		}
		defer con.Close()

		// Registration errors are startup misconfiguration and fatal.
		if err := commands.RegisterAll(con); err != nil {
			logger.Fatal().Err(err).Msg("failed to register built-in commands")
		}

		logger.Debug().Strs("commands", con.Commands()).Msg("starting console")

		if err := con.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Debug().Msg("console has shut down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
