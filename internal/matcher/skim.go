package matcher

import "github.com/sahilm/fuzzy"

// skim wraps sahilm/fuzzy. It rewards consecutive runs, word starts and
// camelCase transitions, and matches case-insensitively.
type skim struct {
	query string
	line  [1]string
}

func newSkim(query string) *skim {
	return &skim{query: query}
}

func (s *skim) Algo() Algo { return Skim }

func (s *skim) Clone() Matcher {
	return newSkim(s.query)
}

func (s *skim) Match(line string) (Match, bool) {
	if blank(s.query) {
		return Match{}, true
	}

	s.line[0] = line
	results := fuzzy.FindNoSort(s.query, s.line[:])
	if len(results) == 0 {
		return Match{}, false
	}

	// sahilm/fuzzy reports byte offsets.
	indices := byteToRuneOffsets(line, results[0].MatchedIndexes)
	return Match{
		Score:   int64(results[0].Score),
		Indices: normalizeIndices(indices),
	}, true
}
