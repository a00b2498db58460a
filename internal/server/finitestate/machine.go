// Package finitestate is the lifecycle machine of the runnables started by "mapctl serve".
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Lifecycle states, shared with go-supervisor so it can read them through Stateable.
const (
	StatusNew       = fsm.StatusNew
	StatusBooting   = fsm.StatusBooting
	StatusRunning   = fsm.StatusRunning
	StatusReloading = fsm.StatusReloading
	StatusStopping  = fsm.StatusStopping
	StatusStopped   = fsm.StatusStopped
	StatusError     = fsm.StatusError
)

// Machine is the subset of go-fsm a runnable drives.
type Machine interface {
	Transition(state string) error
	// TransitionBool is Transition for callers that only care whether it happened, such
	// as a reload that is skipped while another one runs.
	TransitionBool(state string) bool
	SetState(state string) error
	GetState() string
	// GetStateChan emits every state change until ctx is done.
	GetStateChan(ctx context.Context) <-chan string
}

// New returns a machine in StatusNew that allows the usual
// New -> Booting -> Running <-> Reloading -> Stopping -> Stopped path.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StatusNew, fsm.TypicalTransitions)
}
