package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atlanticdynamic/mapctl/internal/config"
	"github.com/atlanticdynamic/mapctl/internal/fancy"
	"github.com/urfave/cli/v3"
)

// ErrNoLocation is returned when no configuration file or URI is given.
var ErrNoLocation = errors.New(
	"config location required (use the --config flag, or provide file paths or s3:// URIs as arguments)",
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Validate one or more configuration files",
		ArgsUsage: "[LOCATION...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of each validated configuration",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path or s3:// URI of the configuration file",
			},
		},
		Suggest: true,
		Action:  validateAction,
	}
}

// locations returns --config followed by the positional arguments
func locations(cmd *cli.Command) []string {
	var out []string
	if c := cmd.String("config"); c != "" {
		out = append(out, c)
	}
	return append(out, cmd.Args().Slice()...)
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	locs := locations(cmd)
	if len(locs) == 0 {
		return cli.Exit(ErrNoLocation, 1)
	}

	w := cmd.Root().Writer
	var failed []string
	for _, loc := range locs {
		if err := validateOne(ctx, w, loc, cmd.Bool("tree")); err != nil {
			failed = append(failed, loc)
			if _, werr := fmt.Fprintf(w, "%s %s\n%v\n", fancy.ErrorText("✗"), fancy.PathText(loc), err); werr != nil {
				return werr
			}
		}
	}

	if len(failed) > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d configurations failed validation: %s",
			len(failed), len(locs), strings.Join(failed, ", ")), 1)
	}
	return nil
}

func validateOne(ctx context.Context, w io.Writer, loc string, treeView bool) error {
	cfg, err := config.NewConfigFromLocation(ctx, loc)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s is valid\n", fancy.ValidText("✓"), fancy.PathText(loc)); err != nil {
		return err
	}

	if treeView {
		_, err = fmt.Fprintln(w, cfg)
		return err
	}
	_, err = fmt.Fprintln(w, renderConfigSummary(cfg))
	return err
}

// summaryWidth caps the one-line summary column of the validate table.
const summaryWidth = 96

// renderConfigSummary lists each configured control with its one-line summary
func renderConfigSummary(cfg *config.Config) string {
	controls := cfg.Controls()
	rows := make([][]string, 0, len(controls))
	for _, name := range controls {
		section, _ := cfg.Section(name)
		rows = append(rows, []string{fancy.ControlText(name), fancy.TruncateString(section.String(), summaryWidth)})
	}

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Version: %s\n", cfg.GetVersion()))
	summary.WriteString(fancy.FormatSection("Controls", len(controls)))
	summary.WriteString("\n")
	if len(rows) > 0 {
		summary.WriteString(fancy.Table([]string{"Control", "Summary"}, rows))
		summary.WriteString("\n")
	}
	summary.WriteString("Use --tree for a more detailed view of the config.")
	return summary.String()
}
