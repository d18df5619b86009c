// Package present turns ranked lines into display-ready output.
package present

import (
	"github.com/aidanlsb/maple/internal/filter"
	"github.com/aidanlsb/maple/internal/icon"
)

// DefaultWinWidth is the display budget used when none is configured.
const DefaultWinWidth = 62

// Options controls how ranked lines are prepared.
type Options struct {
	// WinWidth is the display budget in characters.
	WinWidth int

	// Icons prepends a file-type glyph to every line after truncation.
	Icons bool
}

// Result is the display-ready top of a ranking.
type Result struct {
	Total        int                  `json:"total" yaml:"total"`
	Lines        []string             `json:"lines" yaml:"lines"`
	Indices      [][]int              `json:"indices" yaml:"indices"`
	TruncatedMap filter.TruncationMap `json:"truncated_map,omitempty" yaml:"truncated_map,omitempty"`
}

// Item is a single ranked line, used when every match is streamed.
type Item struct {
	Text    string `json:"text" yaml:"text"`
	Indices []int  `json:"indices" yaml:"indices"`
}

// Build truncates top to opts.WinWidth, optionally decorates it with icons,
// and pairs it with the total number of matches.
func Build(top []filter.MatchedLine, total int, opts Options) Result {
	winwidth := opts.WinWidth
	if winwidth <= 0 {
		winwidth = DefaultWinWidth
	}

	lines, truncated := filter.TruncateLongMatchedLines(filter.Lines(top), winwidth, 0)

	res := Result{
		Total:   total,
		Lines:   make([]string, 0, len(lines)),
		Indices: make([][]int, 0, len(lines)),
	}
	for _, line := range lines {
		text, indices := line.Text, line.Indices
		if opts.Icons {
			decorated := icon.Prepend(text)
			if orig, ok := truncated[text]; ok {
				delete(truncated, text)
				truncated[decorated] = orig
			}
			text, indices = decorated, icon.ShiftIndices(indices)
		}
		if indices == nil {
			indices = []int{}
		}
		res.Lines = append(res.Lines, text)
		res.Indices = append(res.Indices, indices)
	}
	if len(truncated) > 0 {
		res.TruncatedMap = truncated
	}
	return res
}

// Items converts every ranked line to an Item without truncation.
func Items(ranked []filter.MatchedLine) []Item {
	items := make([]Item, len(ranked))
	for i, m := range ranked {
		indices := m.Indices
		if indices == nil {
			indices = []int{}
		}
		items[i] = Item{Text: m.Text, Indices: indices}
	}
	return items
}
