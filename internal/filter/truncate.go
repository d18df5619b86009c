package filter

import "strings"

// TruncateLongMatchedLines shortens lines whose last match lies beyond
// winwidth so that the matches stay visible in a window of that width.
//
// A long line is cut on the left and the cut is replaced by Ellipsis:
//
//	|----------------------winwidth|
//	directories/are/nested/a/lot/then/the/matched/items/xx--x---
//	                        ...then/the/matched/items/xx--x---
//
// If the matches span more than winwidth the cut is made at the first match
// instead, so the whole span stays visible and only the tail may overflow.
//
// startingPoint is the width of a fixed prefix, such as an icon, that is
// kept verbatim in front of the ellipsis. Zero means no prefix.
//
// Lines without matches, lines whose matches already fit, and lines that
// cutting would not shorten are returned unchanged. Every line that is
// shortened gets an entry in the returned map, keyed by its new text.
func TruncateLongMatchedLines[T any](lines []Line[T], winwidth int, startingPoint int) ([]Line[T], TruncationMap) {
	truncated := make(TruncationMap)
	out := make([]Line[T], len(lines))
	for i, line := range lines {
		short, ok := truncateLine(line, winwidth, startingPoint)
		if ok {
			truncated[short.Text] = line.Text
		}
		out[i] = short
	}
	return out, truncated
}

// truncateLine cuts a single line. It reports false when the line is
// returned as is.
func truncateLine[T any](line Line[T], winwidth int, startingPoint int) (Line[T], bool) {
	if len(line.Indices) == 0 {
		return line, false
	}
	first := line.Indices[0]
	last := line.Indices[len(line.Indices)-1]
	if last <= winwidth {
		return line, false
	}

	runes := []rune(line.Text)
	n := len(runes)
	if first < 0 || last >= n {
		return line, false
	}

	start := last - winwidth
	if start >= first || (len(line.Indices) > 1 && last-start > winwidth) {
		start = first
	}

	// Make room for the ellipsis while there is slack before the first match.
	for i := 0; i < 3; i++ {
		if first-start >= ellipsisLen && n-start >= winwidth {
			start += ellipsisLen
		} else {
			break
		}
	}

	// Fewer characters follow the last match than precede the first one
	// inside the window: spend them on the left instead.
	if trailing := n - last; trailing < first-start {
		start += trailing
	}

	// The ellipsis itself takes room; keep the last match inside winwidth
	// unless that would hide the first match.
	if fit := min(last-winwidth+ellipsisLen, first); start < fit {
		start = fit
	}

	prefix := max(0, min(startingPoint, n))
	body := min(start+prefix, first)
	if body <= prefix+ellipsisLen {
		// Cutting would not make the line shorter, or the first match sits
		// inside the fixed prefix.
		return line, false
	}

	var b strings.Builder
	b.Grow(len(line.Text))
	b.WriteString(string(runes[:prefix]))
	b.WriteString(Ellipsis)
	b.WriteString(string(runes[body:]))

	offset := body - prefix - ellipsisLen
	indices := make([]int, len(line.Indices))
	for i, idx := range line.Indices {
		indices[i] = idx - offset
	}

	return Line[T]{Text: b.String(), Payload: line.Payload, Indices: indices}, true
}
