// Package snapshot tracks one loaded map controls configuration from the moment it is read
// until a newer one replaces it. Each snapshot carries its own log history so that the
// messages produced while loading and validating can be replayed later.
package snapshot

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/atlanticdynamic/mapctl/internal/config"
	"github.com/atlanticdynamic/mapctl/internal/config/loader"
	"github.com/atlanticdynamic/mapctl/internal/config/snapshot/finitestate"
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
)

// Source describes where a configuration came from
type Source string

const (
	// SourceFile indicates configuration read from the local file system
	SourceFile Source = "file"
	// SourceS3 indicates configuration fetched from an S3 object
	SourceS3 Source = "s3"
	// SourceTest indicates configuration built by a test
	SourceTest Source = "test"
)

// ErrNilConfig is recorded when a snapshot is validated without a configuration.
var ErrNilConfig = errors.New("config is nil")

// Snapshot is one loaded configuration plus the metadata describing it.
type Snapshot struct {
	// ID is unique per load, and doubles as the HTTP entity tag
	ID uuid.UUID

	Source       Source
	SourceDetail string
	CreatedAt    time.Time

	fsm finitestate.Machine

	logger       *slog.Logger
	logCollector *loglater.LogCollector

	cfg *config.Config

	validationErrors []error
	IsValid          atomic.Bool
}

// New creates a Snapshot in the created state.
func New(source Source, sourceDetail string, cfg *config.Config, handler slog.Handler) (*Snapshot, error) {
	id := uuid.Must(uuid.NewV6())

	sm, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("%s failed to create state machine: %w", id, err)
	}

	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With(
		"id", id,
		"source", source,
		"sourceDetail", sourceDetail)

	s := &Snapshot{
		ID:           id,
		Source:       source,
		SourceDetail: sourceDetail,
		CreatedAt:    time.Now(),
		fsm:          sm,
		logger:       logger,
		logCollector: logCollector,
		cfg:          cfg,
	}

	if cfg != nil {
		s.logger.Info("Snapshot created", "controls", cfg.Controls())
	}
	return s, nil
}

// FromLocation creates a Snapshot for a config loaded from a file path or an s3:// URI.
func FromLocation(location string, cfg *config.Config, handler slog.Handler) (*Snapshot, error) {
	if loader.IsS3URI(location) {
		return New(SourceS3, location, cfg, handler)
	}

	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	return New(SourceFile, absPath, cfg, handler)
}

// FromTest creates a Snapshot for testing
func FromTest(testName string, cfg *config.Config, handler slog.Handler) (*Snapshot, error) {
	return New(SourceTest, testName, cfg, handler)
}

// GetState returns the current state of the snapshot
func (s *Snapshot) GetState() string {
	return s.fsm.GetState()
}

// GetID returns the snapshot ID as a string
func (s *Snapshot) GetID() string {
	return s.ID.String()
}

// ETag returns the quoted entity tag for HTTP responses built from this snapshot.
func (s *Snapshot) ETag() string {
	return `"` + s.ID.String() + `"`
}

// GetConfig returns the configuration held by this snapshot
func (s *Snapshot) GetConfig() *config.Config {
	return s.cfg
}

// GetErrors returns the validation errors recorded for this snapshot
func (s *Snapshot) GetErrors() []error {
	return s.validationErrors
}

// MarkActive records that the snapshot is being served. Only validated snapshots can
// become active.
func (s *Snapshot) MarkActive() error {
	if !s.IsValid.Load() {
		s.logger.Error("Cannot activate invalid snapshot", "state", s.GetState())
		return fmt.Errorf("snapshot %s is not valid", s.ID)
	}
	return s.transition(finitestate.StateActive, "Snapshot activated")
}

// MarkSuperseded records that a newer snapshot replaced this one.
func (s *Snapshot) MarkSuperseded(by *Snapshot) error {
	if by != nil {
		s.logger = s.logger.With("supersededBy", by.ID)
	}
	return s.transition(finitestate.StateSuperseded, "Snapshot superseded")
}

// MarkFailed moves the snapshot to the error state and records the cause.
func (s *Snapshot) MarkFailed(err error) error {
	if transErr := s.fsm.Transition(finitestate.StateError); transErr != nil {
		s.logger.Error("Failed to transition to error state",
			"error", transErr,
			"originalError", err)
		return transErr
	}

	s.validationErrors = append(s.validationErrors, err)
	s.logger.Error("Snapshot failed", "state", finitestate.StateError, "error", err)
	return nil
}

// PlaybackLogs replays the snapshot's log history to the given handler
func (s *Snapshot) PlaybackLogs(handler slog.Handler) error {
	return s.logCollector.PlayLogs(handler)
}

// GetTotalDuration returns the time since the snapshot was created
func (s *Snapshot) GetTotalDuration() time.Duration {
	return time.Since(s.CreatedAt)
}

// String returns a one-line summary
func (s *Snapshot) String() string {
	return fmt.Sprintf("Snapshot %s (state=%s, source=%s:%s)",
		s.ID, s.GetState(), s.Source, s.SourceDetail)
}

func (s *Snapshot) transition(state, msg string) error {
	if err := s.fsm.Transition(state); err != nil {
		s.logger.Error(
			"Failed to transition to state",
			"error", err,
			"targetState", state,
			"currentState", s.GetState())
		return err
	}
	s.logger.Info(msg, "state", state, "age", s.GetTotalDuration())
	return nil
}
