package catalog

import (
	"errors"
	"fmt"
)

// SourceError reports why a catalog source could not supply courses.
type SourceError struct {
	Step string // "database" or "csv"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("catalog source %s unavailable: %v", e.Step, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ErrNoRows is wrapped by a SourceError when a source returned zero courses.
var ErrNoRows = errors.New("source returned no courses")
