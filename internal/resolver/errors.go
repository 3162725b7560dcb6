package resolver

import (
	"errors"
	"fmt"
)

// ErrNoTracksFound is returned when a search completes but matches nothing
var ErrNoTracksFound = errors.New("no tracks found")

// ResolutionFailedError is returned when the search itself fails: the node
// was unreachable, rejected the request, or returned an unparseable response.
// It is deliberately distinct from ErrNoTracksFound; callers render the two
// differently.
type ResolutionFailedError struct {
	// Identifier is the query that failed to resolve
	Identifier string

	// Err is the underlying transport or decode error
	Err error
}

func (e *ResolutionFailedError) Error() string {
	return fmt.Sprintf("failed to resolve %q: %v", e.Identifier, e.Err)
}

func (e *ResolutionFailedError) Unwrap() error {
	return e.Err
}
