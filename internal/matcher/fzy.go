package matcher

import (
	"sync"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

var initScheme sync.Once

// fzy wraps fzf's FuzzyMatchV2, which finds the best-scoring alignment of
// the query rather than the leftmost one. Matching uses smart case: it is
// case-sensitive only when the query contains an upper-case letter.
//
// The slab is scratch memory reused across calls, so a fzy value must not be
// shared between goroutines; use Clone.
type fzy struct {
	query         string
	pattern       []rune
	caseSensitive bool
	slab          *util.Slab
}

func newFzy(query string) *fzy {
	initScheme.Do(func() {
		algo.Init("default")
	})

	caseSensitive := false
	for _, r := range query {
		if unicode.IsUpper(r) {
			caseSensitive = true
			break
		}
	}
	return &fzy{
		query:         query,
		pattern:       algo.NormalizeRunes([]rune(query)),
		caseSensitive: caseSensitive,
		slab:          util.MakeSlab(slab16Size, slab32Size),
	}
}

func (f *fzy) Algo() Algo { return Fzy }

func (f *fzy) Clone() Matcher {
	return newFzy(f.query)
}

func (f *fzy) Match(line string) (Match, bool) {
	if blank(f.query) {
		return Match{}, true
	}

	text := line
	if !f.caseSensitive {
		text = lowerRunes(line)
	}
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(
		true, // pattern and text already share a case
		true, // normalize latin script letters
		true, // forward
		&chars,
		f.pattern,
		true, // withPos
		f.slab,
	)
	if result.Start < 0 || positions == nil {
		return Match{}, false
	}

	indices := make([]int, len(*positions))
	copy(indices, *positions)
	return Match{
		Score:   int64(result.Score),
		Indices: normalizeIndices(indices),
	}, true
}

// lowerRunes lower-cases s one rune at a time so rune offsets into the
// result line up with rune offsets into s.
func lowerRunes(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}
