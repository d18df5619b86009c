// Package icon picks a file-type glyph for a candidate line.
//
// The glyphs are Nerd Font code points. A decorated line is the glyph, a
// space, then the line, so the decoration is always Width runes wide.
package icon

import (
	"path/filepath"
	"strings"
)

// Width is the number of runes Prepend adds in front of a line.
const Width = 2

// Default is used when nothing more specific is known.
const Default = ''

var byExtension = map[string]rune{
	"c":     '',
	"cc":    '',
	"clj":   '',
	"cpp":   '',
	"css":   '',
	"dart":  '',
	"go":    '',
	"h":     '',
	"hpp":   '',
	"hs":    '',
	"html":  '',
	"java":  '',
	"jpg":   '',
	"js":    '',
	"json":  '',
	"jsx":   '',
	"lock":  '',
	"lua":   '',
	"md":    '',
	"php":   '',
	"png":   '',
	"py":    '',
	"rb":    '',
	"rs":    '',
	"scala": '',
	"scss":  '',
	"sh":    '',
	"sql":   '',
	"swift": '',
	"toml":  '',
	"ts":    '',
	"tsx":   '',
	"txt":   '',
	"vim":   '',
	"yaml":  '',
	"yml":   '',
	"zip":   '',
}

var byName = map[string]rune{
	".gitignore":   '',
	"Dockerfile":   '',
	"LICENSE":      '',
	"Makefile":     '',
	"README.md":    '',
	"go.mod":       '',
	"go.sum":       '',
	"Cargo.toml":   '',
	"package.json": '',
}

// For returns the glyph for a line. The last whitespace-separated field is
// treated as a path; its base name is looked up first, then its extension.
func For(line string) rune {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Default
	}
	base := filepath.Base(filepath.ToSlash(fields[len(fields)-1]))
	if r, ok := byName[base]; ok {
		return r
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if r, ok := byExtension[strings.ToLower(ext)]; ok {
		return r
	}
	return Default
}

// Prepend decorates line with its glyph and a space.
func Prepend(line string) string {
	return string(For(line)) + " " + line
}

// ShiftIndices moves rune offsets past the decoration added by Prepend.
func ShiftIndices(indices []int) []int {
	if indices == nil {
		return nil
	}
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = idx + Width
	}
	return out
}
