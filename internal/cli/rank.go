package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aidanlsb/maple/internal/filter"
	"github.com/aidanlsb/maple/internal/matcher"
	"github.com/aidanlsb/maple/internal/present"
	"github.com/aidanlsb/maple/internal/shellquote"
	"github.com/aidanlsb/maple/internal/source"
	"github.com/aidanlsb/maple/internal/ui"
)

// rankRequest is a fully resolved filter or blines invocation.
type rankRequest struct {
	query    string
	src      source.Source
	algo     matcher.Algo
	number   int
	winwidth int
	icons    bool
	format   present.Format
}

// runRank ranks req.src and writes the result to stdout. With a positive
// number the top lines are truncated for display; otherwise every match is
// streamed untouched.
func runRank(ctx context.Context, req rankRequest) error {
	start := time.Now()
	display := ui.NewDisplayContext()

	if req.number <= 0 {
		ranked, err := filter.Rank(ctx, req.query, req.src, req.algo)
		if err != nil {
			return handleRankError(err, req)
		}
		elapsed := time.Since(start)
		logRanked(req, len(ranked), elapsed)

		items := present.Items(ranked)
		if isJSONOutput() {
			outputSuccessWithWarnings(items, noMatchWarnings(req, len(items)), &Meta{
				Count:       len(items),
				Total:       len(items),
				QueryTimeMs: elapsed.Milliseconds(),
			})
			return nil
		}
		if err := present.WriteItems(os.Stdout, req.format, items, display.Highlighter()); err != nil {
			return handleError(ErrInternal, err, "")
		}
		return nil
	}

	top, total, err := filter.RankTop(ctx, req.query, req.src, req.algo, req.number)
	if err != nil {
		return handleRankError(err, req)
	}
	elapsed := time.Since(start)
	logRanked(req, total, elapsed)

	winwidth := req.winwidth
	textOut := !isJSONOutput() && req.format == present.FormatText
	if textOut {
		winwidth = display.WinWidth(req.winwidth, present.DefaultWinWidth)
	}
	res := present.Build(top, total, present.Options{WinWidth: winwidth, Icons: req.icons})

	if isJSONOutput() {
		outputSuccessWithWarnings(res, noMatchWarnings(req, total), &Meta{
			Count:       len(res.Lines),
			Total:       total,
			QueryTimeMs: elapsed.Milliseconds(),
		})
		return nil
	}
	if err := present.WriteResult(os.Stdout, req.format, res, display.Highlighter()); err != nil {
		return handleError(ErrInternal, err, "")
	}
	if textOut && display.IsTTY {
		if total == 0 {
			fmt.Fprintln(os.Stderr, ui.Warning(noMatchWarnings(req, total)[0].Message))
		} else {
			fmt.Fprintln(os.Stderr, ui.Hint(ui.Count(len(res.Lines), total)))
		}
	}
	return nil
}

func logRanked(req rankRequest, matches int, elapsed time.Duration) {
	cliLog.Debug("ranked",
		slog.String("source", req.src.Name()),
		slog.String("algo", req.algo.String()),
		slog.Int("matches", matches),
		slog.Duration("elapsed", elapsed),
	)
}

func noMatchWarnings(req rankRequest, total int) []Warning {
	if total > 0 {
		return nil
	}
	return []Warning{{
		Code:    WarnNoMatches,
		Message: fmt.Sprintf("no lines from %s matched %s", req.src.Name(), shellquote.QuoteIfNeeded(req.query)),
	}}
}

// handleRankError maps ranking failures to stable error codes.
func handleRankError(err error, req rankRequest) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, filter.ErrMatch):
		return handleError(ErrMatchError, err, "")
	case errors.Is(err, filter.ErrSource):
		if errors.Is(err, os.ErrNotExist) {
			return handleError(ErrSourceError, err, "Check the path passed to --input")
		}
		return handleError(ErrSourceError, err, "")
	default:
		cliLog.Error("rank_failed", slog.String("query", req.query), slog.Any("error", err))
		return handleError(ErrInternal, err, "")
	}
}
