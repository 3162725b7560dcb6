package player

import (
	"errors"
	"fmt"
)

// Define errors
var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNilGateway  = errors.New("gateway cannot be nil")
	ErrNilNode     = errors.New("node cannot be nil")
	ErrNilResolver = errors.New("resolver cannot be nil")
	ErrNilSessions = errors.New("session directory cannot be nil")
)

// OutOfBoundsError is returned when a volume value falls outside the accepted
// bounds. It is raised before any directive reaches the node.
type OutOfBoundsError struct {
	// Value that was rejected
	Value int

	// Min and Max describe the accepted bounds, inclusive
	Min int
	Max int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("volume value is out of bounds: %d, must be in [%d, %d]", e.Value, e.Min, e.Max)
}
