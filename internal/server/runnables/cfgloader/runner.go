// Package cfgloader provides a supervised runnable that loads the map controls
// configuration from a file or S3 object, and hands each new snapshot to subscribers.
package cfgloader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/atlanticdynamic/mapctl/internal/config"
	"github.com/atlanticdynamic/mapctl/internal/config/loader"
	"github.com/atlanticdynamic/mapctl/internal/config/snapshot"
	"github.com/atlanticdynamic/mapctl/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable   = (*Runner)(nil)
	_ supervisor.Reloadable = (*Runner)(nil)
	_ supervisor.Stateable  = (*Runner)(nil)
)

type Runner struct {
	location          string
	s3Opts            []loader.S3Option
	lastValidSnapshot atomic.Pointer[snapshot.Snapshot]

	logger *slog.Logger
	fsm    finitestate.Machine

	runCtx    context.Context
	runCancel context.CancelFunc
	parentCtx context.Context

	// serializes Reload calls so snapshots are activated in load order
	reloadMu sync.Mutex

	// subMu guards the subscriber map; broadcasts hold it for reading so that a
	// channel is never closed while a send is in flight.
	subMu       sync.RWMutex
	subscribers map[uint64]chan *snapshot.Snapshot
	nextSubID   uint64
}

// NewRunner creates a Runner that loads configuration from location, either a file path or
// an s3://bucket/key URI.
func NewRunner(location string, opts ...Option) (*Runner, error) {
	runner := &Runner{
		location:    location,
		logger:      slog.Default().WithGroup("cfgloader.Runner"),
		parentCtx:   context.Background(),
		subscribers: make(map[uint64]chan *snapshot.Snapshot),
	}

	for _, opt := range opts {
		opt(runner)
	}

	fsmLogger := runner.logger.WithGroup("fsm")
	fsm, err := finitestate.New(fsmLogger.Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	runner.fsm = fsm

	return runner, nil
}

// String implements the supervisor.Runnable interface
func (r *Runner) String() string {
	return "cfgloader.Runner"
}

// Run implements the supervisor.Runnable interface
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("Starting Runner")

	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting state: %w", err)
	}

	r.runCtx, r.runCancel = context.WithCancel(ctx)

	if err := r.boot(); err != nil {
		if stateErr := r.fsm.Transition(finitestate.StatusError); stateErr != nil {
			r.logger.Error("Failed to transition to error state", "error", stateErr)
		}
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("failed to transition to running state: %w", err)
	}

	// block here waiting for a context cancellation
	select {
	case <-r.parentCtx.Done():
		r.logger.Debug("Parent context canceled")
	case <-r.runCtx.Done():
		r.logger.Debug("Run context canceled")
	}

	r.logger.Info("Runner shutting down")

	if r.fsm.GetState() != finitestate.StatusStopping {
		if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
			r.logger.Error("Failed to transition to stopping state", "error", err)
		}
	}

	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("failed to transition to stopped state: %w", err)
	}

	r.lastValidSnapshot.Store(nil)
	return nil
}

// boot loads the initial configuration
func (r *Runner) boot() error {
	if r.location == "" {
		r.logger.Warn("No config location set, skipping boot")
		return nil
	}

	cfg, err := r.load(r.runCtx)
	if err != nil {
		return err
	}

	snap, err := r.validate(cfg)
	if err != nil {
		return err
	}
	r.activate(snap)
	return nil
}

// load reads and decodes the configuration from the runner's location
func (r *Runner) load(ctx context.Context) (*config.Config, error) {
	if loader.IsS3URI(r.location) {
		return config.NewConfigFromS3(ctx, r.location, r.s3Opts...)
	}
	return config.NewConfig(r.location)
}

// validate wraps cfg in a snapshot and validates it
func (r *Runner) validate(cfg *config.Config) (*snapshot.Snapshot, error) {
	snap, err := snapshot.FromLocation(r.location, cfg, r.logger.Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	if err := snap.RunValidation(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if !snap.IsValid.Load() {
		return nil, fmt.Errorf("config validation failed: %v", snap.GetErrors())
	}

	return snap, nil
}

// activate makes snap the current snapshot, retires the previous one and notifies
// subscribers
func (r *Runner) activate(snap *snapshot.Snapshot) {
	if err := snap.MarkActive(); err != nil {
		r.logger.Error("Failed to activate snapshot", "id", snap.ID, "error", err)
		return
	}

	if old := r.lastValidSnapshot.Swap(snap); old != nil {
		if err := old.MarkSuperseded(snap); err != nil {
			r.logger.Warn("Failed to retire previous snapshot", "id", old.ID, "error", err)
		}
	}
	r.broadcastSnapshot(snap)
}

// Stop implements the supervisor.Runnable interface
func (r *Runner) Stop() {
	r.logger.Debug("Stopping Runner")
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.logger.Error("Failed to transition to stopping state", "error", err)
	}
	if r.runCancel != nil {
		r.runCancel()
	}
}

// Reload implements the supervisor.Reloadable interface. A configuration that fails to
// load or validate is logged and the previous snapshot stays active.
func (r *Runner) Reload() {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	r.logger.Debug("Starting Reload...")
	if r.location == "" {
		r.logger.Warn("No config location set, skipping reload")
		return
	}

	if r.fsm.TransitionBool(finitestate.StatusReloading) {
		defer func() {
			if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
				r.logger.Error("Failed to transition back to running state", "error", err)
			}
		}()
	}

	newCfg, err := r.load(r.parentCtx)
	if err != nil {
		r.logger.Error("Failed to reload config", "error", err)
		return
	}

	oldSnap := r.lastValidSnapshot.Load()
	if oldSnap != nil && oldSnap.GetConfig().Equals(newCfg) {
		r.logger.Debug("Config unchanged, skipping broadcast", "id", oldSnap.ID)
		return
	}

	snap, err := r.validate(newCfg)
	if err != nil {
		r.logger.Error("Failed to validate config", "error", err)
		return
	}
	r.activate(snap)
	r.logger.Info("Config changed, broadcasted to subscribers", "id", snap.ID)
}

// GetSnapshot returns the active snapshot, or nil before the first successful load
func (r *Runner) GetSnapshot() *snapshot.Snapshot {
	return r.lastValidSnapshot.Load()
}

// GetSnapshotChan returns a channel that receives the active snapshot, if any, and every
// snapshot activated afterwards. The channel is closed when ctx or the runner's parent
// context is done.
func (r *Runner) GetSnapshotChan(ctx context.Context) <-chan *snapshot.Snapshot {
	ch := make(chan *snapshot.Snapshot, 1)

	if current := r.lastValidSnapshot.Load(); current != nil {
		ch <- current
	}

	r.subMu.Lock()
	r.nextSubID++
	id := r.nextSubID
	r.subscribers[id] = ch
	r.subMu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-r.parentCtx.Done():
		}
		r.subMu.Lock()
		delete(r.subscribers, id)
		close(ch)
		r.subMu.Unlock()
		r.logger.Debug("Snapshot subscriber removed", "subscriber_id", id)
	}()

	return ch
}

// getConfig returns the last config successfully loaded and validated, or nil if none
func (r *Runner) getConfig() *config.Config {
	snap := r.lastValidSnapshot.Load()
	if snap == nil {
		return nil
	}
	return snap.GetConfig()
}

// broadcastSnapshot sends a snapshot to all subscribers without blocking
func (r *Runner) broadcastSnapshot(snap *snapshot.Snapshot) {
	r.subMu.RLock()
	defer r.subMu.RUnlock()

	for id, ch := range r.subscribers {
		select {
		case ch <- snap:
			r.logger.Debug("Snapshot sent to subscriber", "subscriber_id", id)
		default:
			r.logger.Warn("Subscriber channel full, skipping", "subscriber_id", id)
		}
	}
}
