package ui

import "strings"

// Highlight renders text with the runes at indices in the Match style.
// Indices are rune offsets; ones outside text are ignored.
func Highlight(text string, indices []int) string {
	return highlightWith(text, indices, Match.Render)
}

// Plain returns text unchanged. It satisfies the same signature as Highlight
// for output that is not going to a terminal.
func Plain(text string, _ []int) string {
	return text
}

// highlightWith groups consecutive matched runes into a single render call
// so the escape sequences stay short.
func highlightWith(text string, indices []int, render func(...string) string) string {
	if len(indices) == 0 {
		return text
	}

	runes := []rune(text)
	marked := make([]bool, len(runes))
	found := false
	for _, idx := range indices {
		if idx >= 0 && idx < len(runes) {
			marked[idx] = true
			found = true
		}
	}
	if !found {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && marked[j] == marked[i] {
			j++
		}
		if marked[i] {
			b.WriteString(render(string(runes[i:j])))
		} else {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return b.String()
}
