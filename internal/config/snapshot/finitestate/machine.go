// Package finitestate provides the state machine tracking a configuration snapshot from
// load to retirement.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Snapshot states
const (
	StateCreated    = "created"    // Loaded, not yet validated
	StateValidating = "validating" // Validation is in progress
	StateValidated  = "validated"  // Validation succeeded, ready to serve
	StateInvalid    = "invalid"    // Validation failed (terminal state)
	StateActive     = "active"     // Currently served
	StateSuperseded = "superseded" // Replaced by a newer snapshot (terminal state)
	StateError      = "error"      // Unrecoverable error occurred (terminal state)
)

// SnapshotTransitions defines the valid state transitions for a snapshot.
var SnapshotTransitions = map[string][]string{
	StateCreated:    {StateValidating, StateError},
	StateValidating: {StateValidated, StateInvalid, StateError},
	StateValidated:  {StateActive, StateSuperseded, StateError},
	StateInvalid:    {},
	StateActive:     {StateSuperseded, StateError},
	StateSuperseded: {},
	StateError:      {},
}

// Machine is the part of the state machine snapshots use.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state whenever it changes.
	// The channel is closed when the provided context is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a snapshot state machine in StateCreated.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateCreated, SnapshotTransitions)
}

// IsTerminal reports whether no further transitions are possible from state.
func IsTerminal(state string) bool {
	next, ok := SnapshotTransitions[state]
	return ok && len(next) == 0
}
