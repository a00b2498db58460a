// Package publisher serves the active map controls configuration over HTTP, so map
// front-ends can fetch their control options as JSON.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

// ErrNoProvider is returned when the runner is created without a snapshot provider.
var ErrNoProvider = errors.New("snapshot provider is required")

// serverImplementation abstracts the underlying HTTP server sub-runnable
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsRunning() bool
	GetStateChan(ctx context.Context) <-chan string
}

// Runner wraps go-supervisor's httpserver.Runner. It reads the provider's snapshot on
// every request, so it never needs a reload of its own.
type Runner struct {
	address  string
	handlers *handlers
	timeouts TimeoutOptions
	server   serverImplementation
	logger   *slog.Logger
}

// NewRunner creates a publisher listening on address.
func NewRunner(address string, provider SnapshotProvider, opts ...Option) (*Runner, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}

	r := &Runner{
		address:  address,
		handlers: &handlers{provider: provider},
		logger:   slog.Default().WithGroup("publisher.Runner"),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}
	return r, nil
}

// routes builds the published endpoints
func (r *Runner) routes() ([]httpserver.Route, error) {
	mw := []httpserver.HandlerFunc{
		requestLogger(r.logger.WithGroup("http")),
		responseHeaders(),
	}

	defs := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"controls", PathControls, r.handlers.controls},
		{"section", PathSectionPrefix, r.handlers.section},
		{"health", PathHealth, r.handlers.health},
	}

	routes := make([]httpserver.Route, 0, len(defs))
	for _, d := range defs {
		route, err := httpserver.NewRouteFromHandlerFunc(d.name, d.path, d.handler, mw...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP route for %s: %w", d.path, err)
		}
		routes = append(routes, *route)
	}
	return routes, nil
}

// initializeRunner creates the underlying httpserver.Runner
func (r *Runner) initializeRunner() error {
	routes, err := r.routes()
	if err != nil {
		return err
	}

	configCallback := func() (*httpserver.Config, error) {
		options := []httpserver.ConfigOption{}
		if r.timeouts.ReadTimeout > 0 {
			options = append(options, httpserver.WithReadTimeout(r.timeouts.ReadTimeout))
		}
		if r.timeouts.WriteTimeout > 0 {
			options = append(options, httpserver.WithWriteTimeout(r.timeouts.WriteTimeout))
		}
		if r.timeouts.IdleTimeout > 0 {
			options = append(options, httpserver.WithIdleTimeout(r.timeouts.IdleTimeout))
		}
		if r.timeouts.DrainTimeout > 0 {
			options = append(options, httpserver.WithDrainTimeout(r.timeouts.DrainTimeout))
		}

		cfg, err := httpserver.NewConfig(r.address, routes, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return cfg, nil
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(configCallback),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	r.server = runner
	return nil
}

// String implements the supervisor.Runnable interface
func (r *Runner) String() string {
	return fmt.Sprintf("publisher.Runner[%s]", r.address)
}

// Run starts the HTTP server and blocks until it stops
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("Starting publisher", "address", r.address)
	return r.server.Run(ctx)
}

// Stop stops the HTTP server
func (r *Runner) Stop() {
	r.logger.Info("Stopping publisher", "address", r.address)
	r.server.Stop()
}

// GetAddress returns the address this server listens on
func (r *Runner) GetAddress() string {
	return r.address
}
