package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid dimension is not positive.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrUnknownState is returned when a state outside Alive/Dead reaches a map.
	ErrUnknownState = errors.New("unknown cell state")
	// ErrNilCollaborator is returned when a required map or strategy is nil.
	ErrNilCollaborator = errors.New("nil collaborator")
	// ErrUnknownRule is returned when a rule name has no registered factory.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrInvalidRulestring is returned for malformed B/S rulestrings.
	ErrInvalidRulestring = errors.New("invalid rulestring")
	// ErrNeighbourhoodMismatch is returned when a rule is paired with a
	// neighbourhood it cannot read.
	ErrNeighbourhoodMismatch = errors.New("rule does not support neighbourhood")
)

// CheckDimensions returns ErrInvalidDimension if any value is below one.
func CheckDimensions(dims ...int) error {
	for i, d := range dims {
		if d < 1 {
			return fmt.Errorf("%w: dimension %d is %d, must be at least 1", ErrInvalidDimension, i, d)
		}
	}
	return nil
}
