package snapshot

import (
	"github.com/atlanticdynamic/mapctl/internal/config/snapshot/finitestate"
)

// RunValidation validates the held configuration and moves the snapshot to validated or
// invalid. The returned error reports a failed state transition, not a failed
// validation; see IsValid and GetErrors for the outcome.
func (s *Snapshot) RunValidation() error {
	if err := s.fsm.Transition(finitestate.StateValidating); err != nil {
		s.logger.Error(
			"Failed to transition to state",
			"error", err,
			"targetState", finitestate.StateValidating,
			"currentState", s.GetState())
		return err
	}
	s.logger.Debug("Validation started", "state", finitestate.StateValidating)

	if s.cfg == nil {
		return s.setStateInvalid([]error{ErrNilConfig})
	}
	if err := s.cfg.Validate(); err != nil {
		return s.setStateInvalid([]error{err})
	}
	return s.setStateValid()
}

func (s *Snapshot) setStateValid() error {
	if err := s.fsm.Transition(finitestate.StateValidated); err != nil {
		s.logger.Error(
			"Failed to transition to state",
			"error", err,
			"targetState", finitestate.StateValidated,
			"currentState", s.GetState())
		return err
	}

	s.IsValid.Store(true)
	s.logger.Debug("Validation successful", "state", finitestate.StateValidated)
	return nil
}

func (s *Snapshot) setStateInvalid(errs []error) error {
	if err := s.fsm.Transition(finitestate.StateInvalid); err != nil {
		s.logger.Error(
			"Failed to transition to state",
			"error", err,
			"targetState", finitestate.StateInvalid,
			"currentState", s.GetState())
		return err
	}

	s.IsValid.Store(false)
	s.validationErrors = errs
	s.logger.Warn(
		"Validation failed",
		"errors", errs,
		"errorCount", len(errs),
		"state", finitestate.StateInvalid)
	return nil
}
