// Package logging builds the slog handlers used by the mapctl command and its runnables.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticdynamic/mapctl/internal/logging/writers"
	"github.com/charmbracelet/log"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned for a log format other than text or json.
var ErrUnsupportedFormat = errors.New("unsupported log format")

// level is the parsed form of a --log-level value. "trace" is debug plus caller info.
type level struct {
	slog   slog.Level
	charm  log.Level
	caller bool
	stamp  bool
}

func parseLevel(logLevel string) level {
	switch strings.ToLower(logLevel) {
	case "trace":
		return level{slog: slog.LevelDebug, charm: log.DebugLevel, caller: true, stamp: true}
	case "debug":
		return level{slog: slog.LevelDebug, charm: log.DebugLevel, stamp: true}
	case "warn", "warning":
		return level{slog: slog.LevelWarn, charm: log.WarnLevel}
	case "error":
		return level{slog: slog.LevelError, charm: log.ErrorLevel}
	default:
		return level{slog: slog.LevelInfo, charm: log.InfoLevel}
	}
}

// SetupHandlerText configures a charmbracelet text handler with the provided writer and
// log level. A nil writer means stderr.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}
	lvl := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: lvl.stamp,
		ReportCaller:    lvl.caller,
		Level:           lvl.charm,
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level.
// A nil writer means stdout.
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}
	lvl := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     lvl.slog,
		AddSource: lvl.caller,
	})
}

// SetupHandler builds a handler from the command line settings. Output is "stderr",
// "stdout" or a file path (see writers.Open). The returned closer releases the output.
func SetupHandler(logLevel, format, output string) (slog.Handler, io.Closer, error) {
	if output == "" {
		output = writers.Stderr
	}
	w, err := writers.Open(output)
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		return SetupHandlerText(logLevel, w), w, nil
	case FormatJSON:
		return SetupHandlerJSON(logLevel, w), w, nil
	default:
		return nil, nil, errors.Join(
			fmt.Errorf("%w: %s", ErrUnsupportedFormat, format),
			w.Close(),
		)
	}
}

// SetupLogger configures the default logger to write text to stderr at logLevel
func SetupLogger(logLevel string) {
	slog.SetDefault(slog.New(SetupHandlerText(logLevel, nil)))
}
