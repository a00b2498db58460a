package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/mapctl/internal/logging"
	"github.com/urfave/cli/v3"
)

// newApp builds the mapctl command tree. Logging is configured from the global flags
// before any subcommand runs.
func newApp() *cli.Command {
	var logCloser io.Closer

	return &cli.Command{
		Name:    "mapctl",
		Version: Version,
		Usage:   "Validate, render and publish map control configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("MAPCTL_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   logging.FormatText,
				Sources: cli.EnvVars("MAPCTL_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:  "log-output",
				Usage: "Log destination: stderr, stdout or a file path",
				Value: "stderr",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			handler, closer, err := logging.SetupHandler(
				cmd.String("log-level"),
				cmd.String("log-format"),
				cmd.String("log-output"),
			)
			if err != nil {
				return ctx, cli.Exit(err, 1)
			}
			logCloser = closer
			slog.SetDefault(slog.New(handler))
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if logCloser == nil {
				return nil
			}
			return logCloser.Close()
		},
		Commands: []*cli.Command{
			validateCmd(),
			renderCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}
