// Package writers opens the destinations log output can be sent to.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Named outputs
const (
	Stdout = "stdout"
	Stderr = "stderr"
)

// Open returns a writer for output:
//   - "stdout" or "" writes to os.Stdout
//   - "stderr" writes to os.Stderr
//   - "file:///path/to/file" or a plain path appends to the file, creating directories
//
// Closing a standard stream is a no-op.
func Open(output string) (io.WriteCloser, error) {
	switch {
	case output == "" || output == Stdout:
		return nopCloser{os.Stdout}, nil
	case output == Stderr:
		return nopCloser{os.Stderr}, nil
	case strings.HasPrefix(output, "file://"):
		return openFile(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return openFile(output)
	default:
		return nil, fmt.Errorf("unsupported log output: %s", output)
	}
}

// IsStream reports whether output names a standard stream rather than a file.
func IsStream(output string) bool {
	return output == "" || output == Stdout || output == Stderr
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// isFilePath rejects URLs other than file:// and anything without a path separator
func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.ContainsAny(path, `/\`) || filepath.Ext(path) == ".log"
}

func openFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}
