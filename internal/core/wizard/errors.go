package wizard

import "errors"

var (
	// ErrInvalidOption is returned when a value is not offered for the
	// current platform/objective or is otherwise out of range.
	ErrInvalidOption = errors.New("invalid option")
	// ErrStepIncomplete is returned by Next when the current step still
	// has unmet requirements.
	ErrStepIncomplete = errors.New("step incomplete")
	// ErrTerminalStep is returned by Next on the results step.
	ErrTerminalStep = errors.New("wizard is already at the results step")
)
