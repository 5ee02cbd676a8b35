package game

import (
	"errors"
	"fmt"
)

// ErrTypeConstraint is the single error kind raised by the simulation core.
// It marks an integration bug: a caller passed a value that is not usable
// where an actor is required. Match it with errors.Is.
var ErrTypeConstraint = errors.New("type constraint violated")

// TypeError reports which operation received an unusable argument.
type TypeError struct {
	Op       string // Operation that rejected the argument
	Expected string // Description of the accepted type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("game: %s: argument must be %s", e.Op, e.Expected)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeConstraint
}
