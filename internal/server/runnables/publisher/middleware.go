package publisher

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// responseHeaders are set on every published document. Clients revalidate with the ETag.
func responseHeaders() httpserver.HandlerFunc {
	h := make(http.Header)
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Content-Type-Options", "nosniff")
	return supervisorHeaders.NewWithOperations(supervisorHeaders.WithSet(h))
}

// requestLogger logs one line per request, at a level picked from the status code.
func requestLogger(logger *slog.Logger) httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		start := time.Now()
		r := rp.Request()

		rp.Next()

		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelDebug
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400 && status != http.StatusNotFound:
			level = slog.LevelWarn
		}

		logger.LogAttrs(r.Context(), level, "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("size", rp.Writer().Size()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
