package main

import (
	"log/slog"
	"testing"

	"github.com/atlanticdynamic/mapctl/internal/logging"
	"github.com/atlanticdynamic/mapctl/internal/testutil"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	buf := &testutil.ThreadSafeBuffer{}
	t.Cleanup(func() {
		if t.Failed() {
			t.Log(buf.String())
		}
	})
	return slog.New(logging.SetupHandlerText("debug", buf))
}
