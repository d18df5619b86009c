// Package filter ranks candidate lines against a fuzzy query and prepares the
// ranked lines for fixed-width display.
//
// Rank applies a matcher to every line of a source and orders the matches by
// descending score. TruncateLongMatchedLines then shortens lines whose
// matches would fall beyond the display width, cutting from the left and
// marking the cut with Ellipsis, so that every matched character stays
// visible.
//
// All offsets and widths in this package count runes, not bytes. Cuts are
// made on a rune slice and therefore always fall on a character boundary.
package filter

// Ellipsis marks the point where a line was cut.
const Ellipsis = "..."

// ellipsisLen is len(Ellipsis) in runes.
const ellipsisLen = 3

// MatchedLine is a candidate line that matched the query.
type MatchedLine struct {
	Text  string `json:"text" yaml:"text"`
	Score int64  `json:"score" yaml:"score"`

	// Indices are the rune offsets of matched characters in Text, strictly
	// increasing.
	Indices []int `json:"indices" yaml:"indices"`
}

// Line is a display line carrying an opaque payload through truncation.
type Line[T any] struct {
	Text    string
	Payload T
	Indices []int
}

// Line converts m into a display line whose payload is the score.
func (m MatchedLine) Line() Line[int64] {
	return Line[int64]{Text: m.Text, Payload: m.Score, Indices: m.Indices}
}

// Lines converts ranked lines into display lines.
func Lines(ranked []MatchedLine) []Line[int64] {
	out := make([]Line[int64], len(ranked))
	for i, m := range ranked {
		out[i] = m.Line()
	}
	return out
}

// TruncationMap maps truncated display text back to the original line. When
// two originals truncate to the same text the last one wins.
type TruncationMap map[string]string

// Original returns the full line behind a display line. Lines that were not
// truncated are returned unchanged.
func (m TruncationMap) Original(display string) string {
	if orig, ok := m[display]; ok {
		return orig
	}
	return display
}
