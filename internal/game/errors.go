package game

import "fmt"

// IllegalActionError reports an action that is not in the legality set for
// the state it was applied to. It is always recoverable: the caller should
// re-query LegalActions and retry with a member of that set.
type IllegalActionError struct {
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", e.Action, e.Reason)
}

func illegal(a Action, format string, args ...any) error {
	return &IllegalActionError{Action: a, Reason: fmt.Sprintf(format, args...)}
}

// InvariantViolation reports a broken engine invariant (card conservation,
// negative forced-draw count). It indicates a defect in the engine itself
// rather than caller misuse and must never be swallowed.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Detail)
}
