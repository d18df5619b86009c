// Package matcher adapts fuzzy matching libraries to a single interface.
//
// A Matcher is compiled once per query and then applied to many lines. Every
// adapter reports matched positions as rune offsets into the line, sorted
// ascending, regardless of the unit the underlying library works in.
package matcher

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrInvalidQuery is returned when a query cannot be compiled.
var ErrInvalidQuery = errors.New("invalid query")

// Match is the outcome of a successful match against one line.
type Match struct {
	// Score is the match quality (higher is better).
	Score int64

	// Indices are the rune offsets of the matched characters, strictly increasing.
	Indices []int
}

// Matcher scores lines against a compiled query.
type Matcher interface {
	// Match reports whether line matches and, if so, its score and positions.
	Match(line string) (Match, bool)

	// Clone returns a matcher for the same query that can be used from
	// another goroutine.
	Clone() Matcher

	// Algo reports which algorithm the matcher implements.
	Algo() Algo
}

// New compiles query for the given algorithm.
func New(algo Algo, query string) (Matcher, error) {
	if !utf8.ValidString(query) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidQuery)
	}
	if strings.ContainsRune(query, 0) {
		return nil, fmt.Errorf("%w: contains NUL byte", ErrInvalidQuery)
	}

	switch algo {
	case Skim:
		return newSkim(query), nil
	case Fzy:
		return newFzy(query), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgo, algo)
	}
}

// blank reports whether a query matches everything with no highlights.
func blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// byteToRuneOffsets converts byte offsets into s to rune offsets. Offsets
// that do not start a rune are dropped.
func byteToRuneOffsets(s string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	runeAt := make(map[int]int, utf8.RuneCountInString(s))
	n := 0
	for b := range s {
		runeAt[b] = n
		n++
	}
	out := make([]int, 0, len(offsets))
	for _, b := range offsets {
		if r, ok := runeAt[b]; ok {
			out = append(out, r)
		}
	}
	return out
}

// normalizeIndices sorts offsets ascending and drops duplicates in place.
func normalizeIndices(indices []int) []int {
	if len(indices) < 2 {
		return indices
	}
	sorted := true
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			sorted = false
			break
		}
	}
	if sorted {
		return indices
	}
	sort.Ints(indices)
	out := indices[:1]
	for _, idx := range indices[1:] {
		if idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	return out
}
