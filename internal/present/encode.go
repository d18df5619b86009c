package present

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are written.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatJSONL, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected text, json, jsonl or yaml)", ErrUnknownFormat, name)
	}
}

// String implements pflag.Value.
func (f *Format) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *Format) Set(value string) error {
	parsed, err := ParseFormat(value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// Highlighter renders text with the runes at indices emphasised.
type Highlighter func(text string, indices []int) string

// WriteResult writes res in the given format. hl is only used for text.
func WriteResult(w io.Writer, format Format, res Result, hl Highlighter) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatJSONL:
		return writeJSONLine(w, res)
	case FormatYAML:
		return writeYAML(w, res)
	default:
		return writeText(w, res.Lines, res.Indices, hl)
	}
}

// WriteItems writes every item in the given format. JSON and JSON Lines both
// emit one object per line, so output can be consumed as it is produced.
func WriteItems(w io.Writer, format Format, items []Item, hl Highlighter) error {
	switch format {
	case FormatJSON, FormatJSONL:
		for _, item := range items {
			if err := writeJSONLine(w, item); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		return writeYAML(w, items)
	default:
		lines := make([]string, len(items))
		indices := make([][]int, len(items))
		for i, item := range items {
			lines[i] = item.Text
			indices[i] = item.Indices
		}
		return writeText(w, lines, indices, hl)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeJSONLine(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, lines []string, indices [][]int, hl Highlighter) error {
	for i, line := range lines {
		if hl != nil && i < len(indices) {
			line = hl(line, indices[i])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
