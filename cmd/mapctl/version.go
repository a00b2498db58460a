package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/version"
	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "mapctl version %s (config %s)\n",
				cmd.Root().Version, version.Version)
			return err
		},
	}
}
