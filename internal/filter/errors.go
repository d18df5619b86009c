package filter

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/maple/internal/matcher"
)

// Sentinel errors for the two ways ranking can fail.
var (
	// ErrSource is returned when candidate lines cannot be enumerated.
	ErrSource = errors.New("source error")

	// ErrMatch is returned when the query cannot be used with the algorithm.
	ErrMatch = errors.New("match error")
)

// SourceError reports a failure enumerating candidate lines.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read candidates from %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}

// MatchError reports a query the selected algorithm cannot run.
type MatchError struct {
	Algo  matcher.Algo
	Query string
	Err   error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s match for query %q: %v", e.Algo, e.Query, e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }

func (e *MatchError) Is(target error) bool {
	return target == ErrMatch
}
