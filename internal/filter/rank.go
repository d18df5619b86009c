package filter

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/aidanlsb/maple/internal/matcher"
	"github.com/aidanlsb/maple/internal/source"
)

// batchSize is the number of candidates handed to a worker at a time.
const batchSize = 512

// Rank matches every line of src against query with the given algorithm and
// returns the matches ordered by descending score. Order among equal scores
// is unspecified.
//
// A query the algorithm rejects yields a *MatchError and a failure to
// enumerate src yields a *SourceError. No partial result is returned in
// either case.
func Rank(ctx context.Context, query string, src source.Source, algo matcher.Algo) ([]MatchedLine, error) {
	m, err := matcher.New(algo, query)
	if err != nil {
		return nil, &MatchError{Algo: algo, Query: query, Err: err}
	}

	workers := runtime.GOMAXPROCS(0)
	batches := make(chan []string, workers)
	found := make([][]MatchedLine, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int, m matcher.Matcher) {
			defer wg.Done()
			for batch := range batches {
				found[w] = matchBatch(m, batch, found[w])
			}
		}(w, m.Clone())
	}

	batch := make([]string, 0, batchSize)
	srcErr := src.Each(ctx, func(line string) error {
		batch = append(batch, line)
		if len(batch) == batchSize {
			select {
			case batches <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
			batch = make([]string, 0, batchSize)
		}
		return nil
	})
	if srcErr == nil && len(batch) > 0 {
		batches <- batch
	}
	close(batches)
	wg.Wait()

	if srcErr != nil {
		return nil, &SourceError{Source: src.Name(), Err: srcErr}
	}

	total := 0
	for _, f := range found {
		total += len(f)
	}
	ranked := make([]MatchedLine, 0, total)
	for _, f := range found {
		ranked = append(ranked, f...)
	}

	SortByScore(ranked)
	return ranked, nil
}

// RankTop is Rank limited to the n best lines. It also returns the total
// number of matches. n <= 0 returns every match.
func RankTop(ctx context.Context, query string, src source.Source, algo matcher.Algo, n int) ([]MatchedLine, int, error) {
	ranked, err := Rank(ctx, query, src, algo)
	if err != nil {
		return nil, 0, err
	}
	total := len(ranked)
	if n > 0 && n < total {
		ranked = ranked[:n]
	}
	return ranked, total, nil
}

// SortByScore orders lines by descending score. The sort is not stable.
func SortByScore(lines []MatchedLine) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Score > lines[j].Score
	})
}

func matchBatch(m matcher.Matcher, batch []string, out []MatchedLine) []MatchedLine {
	for _, line := range batch {
		res, ok := m.Match(line)
		if !ok {
			continue
		}
		out = append(out, MatchedLine{
			Text:    line,
			Score:   res.Score,
			Indices: res.Indices,
		})
	}
	return out
}
