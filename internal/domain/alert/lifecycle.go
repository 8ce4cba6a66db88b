package alert

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no alert has the requested id
	ErrNotFound = errors.New("alert not found")
	// ErrInvalidTransition is returned when an action is applied to an alert
	// that is not active
	ErrInvalidTransition = errors.New("invalid alert transition")
	// ErrUnknownAction is returned for actions outside block, review and resolve
	ErrUnknownAction = errors.New("unknown alert action")
)

// Action is an operator decision on an active alert
type Action string

// Alert actions
const (
	ActionBlock   Action = "block"
	ActionReview  Action = "review"
	ActionResolve Action = "resolve"
)

// Block and review both escalate for review; there is no blocked alert state.
var transitions = map[Action]Status{
	ActionBlock:   StatusUnderReview,
	ActionReview:  StatusUnderReview,
	ActionResolve: StatusResolved,
}

// ParseAction parses an action name. "approve" is accepted as resolve.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if a == "approve" {
		a = ActionResolve
	}
	if _, ok := transitions[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// IsValid reports whether a is a known action
func (a Action) IsValid() bool {
	_, ok := transitions[a]
	return ok
}

// Target returns the status an active alert moves to under a
func (a Action) Target() (Status, error) {
	s, ok := transitions[a]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	return s, nil
}

// Transition applies action to an alert in place. Only active alerts accept
// actions; on error the alert is left untouched.
func Transition(a *Alert, action Action, at time.Time) error {
	target, err := action.Target()
	if err != nil {
		return err
	}
	if a.Status != StatusActive {
		return fmt.Errorf("%w: alert %s is %s, cannot %s", ErrInvalidTransition, a.ID, a.Status, action)
	}
	a.Status = target
	a.LastAction = action
	a.UpdatedAt = &at
	return nil
}
