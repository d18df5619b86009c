package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgo is returned when an algorithm name is not recognised.
var ErrUnknownAlgo = errors.New("unknown fuzzy match algorithm")

// Algo selects which fuzzy match algorithm scores candidate lines.
type Algo int

const (
	// Fzy scores with an optimal-alignment algorithm (fzf v2).
	Fzy Algo = iota
	// Skim scores with a greedy bonus-based algorithm.
	Skim
)

// Algos lists every supported algorithm in display order.
var Algos = []Algo{Skim, Fzy}

// String returns the lower-case name of the algorithm.
func (a Algo) String() string {
	switch a {
	case Skim:
		return "skim"
	case Fzy:
		return "fzy"
	default:
		return fmt.Sprintf("algo(%d)", int(a))
	}
}

// ParseAlgo parses an algorithm name case-insensitively.
func ParseAlgo(name string) (Algo, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "skim":
		return Skim, nil
	case "fzy":
		return Fzy, nil
	default:
		return Fzy, fmt.Errorf("%w: %q (expected skim or fzy)", ErrUnknownAlgo, name)
	}
}

// Set implements pflag.Value.
func (a *Algo) Set(value string) error {
	parsed, err := ParseAlgo(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *Algo) Type() string {
	return "algo"
}

// MarshalText encodes the algorithm by name, for TOML and JSON.
func (a Algo) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an algorithm name, for TOML and JSON.
func (a *Algo) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
