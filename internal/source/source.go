// Package source enumerates candidate lines for filtering.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single candidate line.
const maxLineSize = 1024 * 1024

// Source produces a finite sequence of candidate lines.
type Source interface {
	// Each calls fn for every line in order. It stops at the first error
	// returned by fn or by the underlying enumeration, and when ctx is done.
	Each(ctx context.Context, fn func(line string) error) error

	// Name describes the source for error messages.
	Name() string
}

type list struct {
	lines []string
}

// List returns a source over an in-memory slice.
func List(lines []string) Source {
	return &list{lines: lines}
}

func (l *list) Name() string { return "list" }

func (l *list) Each(ctx context.Context, fn func(string) error) error {
	for i, line := range l.lines {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

type reader struct {
	r    io.Reader
	name string
}

// Reader returns a source that reads newline-separated lines from r.
// Trailing carriage returns are stripped.
func Reader(r io.Reader, name string) Source {
	return &reader{r: r, name: name}
}

func (s *reader) Name() string { return s.name }

func (s *reader) Each(ctx context.Context, fn func(string) error) error {
	return scanLines(ctx, s.r, fn)
}

type file struct {
	path string
}

// File returns a source over the lines of the file at path. The file is
// opened when the source is enumerated.
func File(path string) Source {
	return &file{path: path}
}

func (f *file) Name() string { return f.path }

func (f *file) Each(ctx context.Context, fn func(string) error) error {
	fh, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer fh.Close()

	return scanLines(ctx, fh, fn)
}

func scanLines(ctx context.Context, r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		n++
		if err := fn(strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read lines: %w", err)
	}
	return nil
}

type numbered struct {
	src Source
}

// Numbered prefixes every line of src with its 1-based line number and a
// space, e.g. "12 func main() {".
func Numbered(src Source) Source {
	return &numbered{src: src}
}

func (n *numbered) Name() string { return n.src.Name() }

func (n *numbered) Each(ctx context.Context, fn func(string) error) error {
	lineNo := 0
	return n.src.Each(ctx, func(line string) error {
		lineNo++
		return fn(fmt.Sprintf("%d %s", lineNo, line))
	})
}

// Collect drains src into a slice.
func Collect(ctx context.Context, src Source) ([]string, error) {
	var lines []string
	err := src.Each(ctx, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
