package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	tests := []struct {
		name       string
		output     string
		want       *os.File
		shouldFail bool
	}{
		{name: "empty string defaults to stdout", output: "", want: os.Stdout},
		{name: "stdout", output: Stdout, want: os.Stdout},
		{name: "stderr", output: Stderr, want: os.Stderr},
		{name: "file path", output: filepath.Join(tmpDir, "a.log")},
		{name: "file protocol", output: "file://" + filepath.Join(tmpDir, "b.log")},
		{name: "bare log file name", output: filepath.Join(tmpDir, "c.log")},
		{name: "unsupported scheme", output: "redis://localhost:6379", shouldFail: true},
		{name: "bare word", output: "syslog", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Open(tt.output)
			if tt.shouldFail {
				require.Error(t, err)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, w)
			defer func() { assert.NoError(t, w.Close()) }()

			if tt.want != nil {
				assert.Equal(t, nopCloser{tt.want}, w)
				assert.True(t, IsStream(tt.output))
				return
			}
			assert.False(t, IsStream(tt.output))
			assert.IsType(t, &os.File{}, w)
		})
	}
}

func TestOpen_File(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	t.Run("creates nested directories", func(t *testing.T) {
		path := filepath.Join(tmpDir, "nested", "dir", "mapctl.log")
		w, err := Open(path)
		require.NoError(t, err)

		_, err = w.Write([]byte("first\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(content))
	})

	t.Run("appends to existing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "existing.log")
		require.NoError(t, os.WriteFile(path, []byte("existing content\n"), 0o644))

		w, err := Open(path)
		require.NoError(t, err)
		_, err = w.Write([]byte("more\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "existing content\nmore\n", string(content))
	})
}
