package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlanticdynamic/mapctl/internal/config/loader"
	"github.com/atlanticdynamic/mapctl/internal/server/runnables/cfgloader"
	"github.com/atlanticdynamic/mapctl/internal/server/runnables/publisher"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Publish a configuration over HTTP, reloading it on SIGHUP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path or s3:// URI of the configuration file",
				Required: true,
				Sources:  cli.EnvVars("MAPCTL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Address for the HTTP publisher",
				Value:   ":8080",
				Sources: cli.EnvVars("MAPCTL_LISTEN"),
			},
			&cli.StringFlag{
				Name:  "s3-region",
				Usage: "AWS region for s3:// config locations (defaults to AWS_REGION)",
			},
			&cli.DurationFlag{
				Name:  "drain-timeout",
				Usage: "How long to wait for in-flight requests on shutdown",
				Value: 5 * time.Second,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			err := runServer(ctx, slog.Default(), serverOptions{
				location:     cmd.String("config"),
				listenAddr:   cmd.String("listen"),
				s3Region:     cmd.String("s3-region"),
				drainTimeout: cmd.Duration("drain-timeout"),
			})
			if err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

type serverOptions struct {
	location     string
	listenAddr   string
	s3Region     string
	drainTimeout time.Duration
}

// runServer loads the configuration and publishes it until ctx is canceled or the
// process receives a shutdown signal. SIGHUP reloads the configuration.
func runServer(ctx context.Context, logger *slog.Logger, opts serverOptions) error {
	logHandler := logger.Handler()

	loaderOpts := []cfgloader.Option{
		cfgloader.WithContext(ctx),
		cfgloader.WithLogHandler(logHandler),
	}
	if opts.s3Region != "" {
		loaderOpts = append(loaderOpts, cfgloader.WithS3Options(loader.WithS3Region(opts.s3Region)))
	}

	cfgLoader, err := cfgloader.NewRunner(opts.location, loaderOpts...)
	if err != nil {
		return fmt.Errorf("failed to create config loader: %w", err)
	}

	pub, err := publisher.NewRunner(
		opts.listenAddr,
		cfgLoader,
		publisher.WithLogHandler(logHandler),
		publisher.WithTimeouts(publisher.TimeoutOptions{DrainTimeout: opts.drainTimeout}),
	)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	// runnables start in order; the publisher answers 503 until the loader has a snapshot
	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(cfgLoader, pub),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
