package cli

import (
	"encoding/json"
	"testing"

	"github.com/aidanlsb/maple/internal/present"
)

func TestBlinesNumbersLines(t *testing.T) {
	resetCLIState(t, blinesCmd)
	path := writeLines(t, "package main", "", "func main() {", "}")
	setFlag(t, blinesCmd, "input", path)
	prevInput := blinesInput
	t.Cleanup(func() { blinesInput = prevInput })

	jsonOutput = true
	out := captureStdout(t, func() {
		if err := blinesCmd.RunE(blinesCmd, []string{"func"}); err != nil {
			t.Fatalf("blinesCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	var items []present.Item
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		t.Fatalf("decode items: %v; data=%s", err, resp.Data)
	}
	if len(items) != 1 || items[0].Text != "3 func main() {" {
		t.Fatalf("items = %+v, want line 3", items)
	}
	for _, idx := range items[0].Indices {
		if idx < 2 {
			t.Fatalf("match %d landed in the line number of %q", idx, items[0].Text)
		}
	}
}

func TestBlinesRequiresInput(t *testing.T) {
	resetCLIState(t, blinesCmd)
	prevInput := blinesInput
	t.Cleanup(func() { blinesInput = prevInput })
	blinesInput = ""

	jsonOutput = true
	out := captureStdout(t, func() {
		if err := blinesCmd.RunE(blinesCmd, []string{"two words"}); err != nil {
			t.Fatalf("blinesCmd.RunE: %v", err)
		}
	})

	resp := decodeEnvelope(t, out)
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrMissingArgument {
		t.Fatalf("expected MISSING_ARGUMENT, got %s", out)
	}
	if resp.Error.Suggestion != "Try: maple blines 'two words' --input FILE" {
		t.Fatalf("suggestion = %q", resp.Error.Suggestion)
	}
}
