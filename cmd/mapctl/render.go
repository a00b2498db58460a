package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atlanticdynamic/mapctl/internal/config"
	"github.com/urfave/cli/v3"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Render output formats
const (
	renderJSON = "json"
	renderYAML = "yaml"
	renderTree = "tree"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Load a configuration and print its key-value form",
		ArgsUsage: "LOCATION",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (json, yaml, tree)",
				Value:   renderJSON,
			},
			&cli.StringFlag{
				Name:    "section",
				Aliases: []string{"s"},
				Usage:   "Render only the named control (" + strings.Join(config.Sections, ", ") + ")",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path or s3:// URI of the configuration file",
			},
		},
		Action: renderAction,
	}
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	locs := locations(cmd)
	if len(locs) != 1 {
		return cli.Exit("render takes exactly one config location", 1)
	}

	cfg, err := config.NewConfigFromLocation(ctx, locs[0])
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := render(cmd.Root().Writer, cfg, cmd.String("section"), cmd.String("format")); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func render(w io.Writer, cfg *config.Config, sectionName, format string) error {
	var (
		toProto = cfg.ToProto
		tree    = cfg.String
	)
	if sectionName != "" {
		section, ok := cfg.Section(sectionName)
		if !ok {
			return fmt.Errorf("control '%s' is not configured", sectionName)
		}
		toProto = section.ToProto
		tree = func() string { return section.ToTree().String() }
	}

	if strings.ToLower(format) == renderTree {
		_, err := fmt.Fprintln(w, tree())
		return err
	}

	pb, err := toProto()
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrFailedToConvertConfig, err)
	}

	out, err := marshal(pb, format)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func marshal(pb *structpb.Struct, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case renderJSON:
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(pb)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case renderYAML:
		return yaml.Marshal(pb.AsMap())
	default:
		return nil, fmt.Errorf("unsupported render format: %s", format)
	}
}
