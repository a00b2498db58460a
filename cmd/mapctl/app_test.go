package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atlanticdynamic/mapctl/examples"
	"github.com/atlanticdynamic/mapctl/internal/config"
	"github.com/atlanticdynamic/mapctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

const (
	validConfigPath   = "testdata/controls.toml"
	validYAMLPath     = "testdata/controls.yaml"
	invalidConfigPath = "testdata/invalid.toml"
)

// runApp runs the command line with output captured and exits turned into errors
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	logPath := filepath.Join(t.TempDir(), "mapctl.log")
	argv := append([]string{"mapctl", "--log-output", logPath}, args...)
	err := app.Run(t.Context(), argv)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mapctl version dev (config v1)\n", out)
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	t.Run("summary", func(t *testing.T) {
		out, err := runApp(t, "validate", validConfigPath)
		require.NoError(t, err)
		assert.Contains(t, out, validConfigPath+" is valid")
		assert.Contains(t, out, "Controls (7)")
		assert.Contains(t, out, "Ruler(units=miles")
		assert.Contains(t, out, "Use --tree")
	})

	t.Run("tree", func(t *testing.T) {
		out, err := runApp(t, "validate", "--tree", "--config", validYAMLPath)
		require.NoError(t, err)
		assert.Contains(t, out, "Map Controls Config (v1)")
		assert.NotContains(t, out, "Use --tree")
	})

	t.Run("several files", func(t *testing.T) {
		out, err := runApp(t, "validate", validConfigPath, invalidConfigPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 configurations failed validation")
		assert.Contains(t, out, validConfigPath+" is valid")
		assert.Contains(t, out, invalidConfigPath)
	})

	t.Run("shipped examples", func(t *testing.T) {
		names, err := examples.Names()
		require.NoError(t, err)

		dir := t.TempDir()
		args := []string{"validate"}
		for _, name := range names {
			data, err := examples.Read(name)
			require.NoError(t, err)
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, data, 0o644))
			args = append(args, path)
		}

		out, err := runApp(t, args...)
		require.NoError(t, err)
		assert.Equal(t, len(names), strings.Count(out, " is valid"))
	})

	t.Run("no location", func(t *testing.T) {
		_, err := runApp(t, "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config location required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runApp(t, "lint", "testdata/missing.toml")
		assert.Error(t, err)
	})
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	want, err := config.NewConfig(validConfigPath)
	require.NoError(t, err)

	t.Run("json round-trips", func(t *testing.T) {
		out, err := runApp(t, "render", validConfigPath)
		require.NoError(t, err)

		pb := &structpb.Struct{}
		require.NoError(t, protojson.Unmarshal([]byte(out), pb))
		got, err := config.NewFromProto(pb)
		require.NoError(t, err)
		assert.True(t, want.Equals(got))
	})

	t.Run("yaml section", func(t *testing.T) {
		out, err := runApp(t, "render", "--format", "yaml", "--section", "language", validConfigPath)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "de", doc["language"])
		assert.Len(t, doc["supported_languages"], 3)
	})

	t.Run("tree", func(t *testing.T) {
		out, err := runApp(t, "render", "-f", "tree", "-s", "zoom", validConfigPath)
		require.NoError(t, err)
		assert.Contains(t, out, "Zoom in")
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want string
		}{
			{name: "no location", args: []string{"render"}, want: "exactly one"},
			{name: "unknown section", args: []string{"render", "-s", "legend", validConfigPath}, want: "not configured"},
			{name: "unknown format", args: []string{"render", "-f", "xml", validConfigPath}, want: "unsupported render format"},
			{name: "invalid config", args: []string{"render", invalidConfigPath}, want: "validate"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := runApp(t, tc.args...)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})
}

func TestLogFlags(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "json.log")
	app := newApp()
	app.Writer = io.Discard
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(t.Context(), []string{"mapctl", "--log-format", "xml", "--log-output", logPath, "version"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestRunServer(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(validConfigPath)
	require.NoError(t, err)
	location := filepath.Join(t.TempDir(), "controls.toml")
	require.NoError(t, os.WriteFile(location, data, 0o644))

	addr := testutil.GetRandomListeningPort(t)
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- runServer(ctx, testLogger(t), serverOptions{
			location:     location,
			listenAddr:   addr,
			drainTimeout: time.Second,
		})
	}()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/controls.json")
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		b, err := io.ReadAll(resp.Body)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}
		body = string(b)
		return true
	}, 5*time.Second, 50*time.Millisecond)

	assert.True(t, strings.Contains(body, `"supported_languages"`))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
