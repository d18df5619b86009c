package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/maple/internal/config"
	"github.com/aidanlsb/maple/internal/matcher"
	"github.com/aidanlsb/maple/internal/present"
)

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write lines: %v", err)
	}
	return path
}

func runFilterJSON(t *testing.T, args ...string) envelope {
	t.Helper()
	jsonOutput = true
	out := captureStdout(t, func() {
		if err := runFilter(filterCmd, args); err != nil {
			t.Fatalf("runFilter: %v", err)
		}
	})
	return decodeEnvelope(t, out)
}

func TestFilterJSONIncludesTruncatedMapOnlyWhenNonEmpty(t *testing.T) {
	resetCLIState(t, filterCmd)

	long := strings.Repeat("nested/", 12) + "main.go"
	setFlag(t, filterCmd, "input", writeLines(t, long, "main.go", "readme.md"))
	setFlag(t, filterCmd, "number", "5")
	setFlag(t, filterCmd, "winwidth", "40")

	resp := runFilterJSON(t, "main")
	if !resp.OK {
		t.Fatalf("expected ok=true, got error %+v", resp.Error)
	}
	if !strings.Contains(string(resp.Data), `"truncated_map"`) {
		t.Fatalf("expected truncated_map in data: %s", resp.Data)
	}

	var res present.Result
	if err := json.Unmarshal(resp.Data, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Total != 2 || len(res.Lines) != 2 {
		t.Fatalf("Total=%d Lines=%v, want 2 matches", res.Total, res.Lines)
	}
	found := false
	for display, orig := range res.TruncatedMap {
		if orig != long {
			t.Fatalf("truncated_map[%q] = %q, want the long line", display, orig)
		}
		if !strings.HasPrefix(display, "...") {
			t.Fatalf("truncated line %q lacks ellipsis", display)
		}
		found = true
	}
	if !found {
		t.Fatal("expected one truncated entry")
	}
	if resp.Meta == nil || resp.Meta.Total != 2 {
		t.Fatalf("meta = %+v, want total 2", resp.Meta)
	}

	resetCLIState(t, filterCmd)
	setFlag(t, filterCmd, "list", "main.go,readme.md")
	setFlag(t, filterCmd, "number", "5")

	resp = runFilterJSON(t, "main")
	if strings.Contains(string(resp.Data), "truncated_map") {
		t.Fatalf("empty truncated_map should be omitted: %s", resp.Data)
	}
}

func TestFilterStreamsEveryMatchWithoutNumber(t *testing.T) {
	resetCLIState(t, filterCmd)
	setFlag(t, filterCmd, "list", "alpha,beta,gamma,xyz")
	setFlag(t, filterCmd, "format", "jsonl")

	out := captureStdout(t, func() {
		if err := runFilter(filterCmd, []string{"a"}); err != nil {
			t.Fatalf("runFilter: %v", err)
		}
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %s", len(lines), out)
	}
	seen := map[string]bool{}
	for _, line := range lines {
		var item present.Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if len(item.Indices) == 0 {
			t.Fatalf("item %q has no indices", item.Text)
		}
		seen[item.Text] = true
	}
	for _, want := range []string{"alpha", "beta", "gamma"} {
		if !seen[want] {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}

func TestFilterTextOutputWhenPiped(t *testing.T) {
	resetCLIState(t, filterCmd)
	setFlag(t, filterCmd, "list", "src/main.go")

	out := captureStdout(t, func() {
		if err := runFilter(filterCmd, []string{"main"}); err != nil {
			t.Fatalf("runFilter: %v", err)
		}
	})
	if out != "src/main.go\n" {
		t.Fatalf("text output = %q, want plain line", out)
	}
}

func TestFilterReadsCommandOutput(t *testing.T) {
	resetCLIState(t, filterCmd)
	setFlag(t, filterCmd, "cmd", `printf 'a.go\nb.txt\nc.go\n'`)

	resp := runFilterJSON(t, "go")
	var items []present.Item
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		t.Fatalf("decode items: %v; data=%s", err, resp.Data)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %s", len(items), resp.Data)
	}
}

func TestFilterNoMatchesWarns(t *testing.T) {
	resetCLIState(t, filterCmd)
	setFlag(t, filterCmd, "list", "alpha,beta")

	resp := runFilterJSON(t, "zzz")
	if !resp.OK {
		t.Fatalf("expected ok=true, got %+v", resp.Error)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != WarnNoMatches {
		t.Fatalf("warnings = %+v, want NO_MATCHES", resp.Warnings)
	}
}

func TestFilterErrorCodes(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
		query string
		code  string
	}{
		{
			name:  "two sources",
			flags: map[string]string{"list": "a", "cmd": "echo a"},
			query: "a",
			code:  ErrInvalidInput,
		},
		{
			name:  "no input on a terminal",
			query: "a",
			code:  ErrInvalidInput,
		},
		{
			name:  "missing file",
			flags: map[string]string{"input": filepath.Join(os.TempDir(), "maple-does-not-exist", "x.txt")},
			query: "a",
			code:  ErrSourceError,
		},
		{
			name:  "failing command",
			flags: map[string]string{"cmd": "exit 4"},
			query: "a",
			code:  ErrSourceError,
		},
		{
			name:  "invalid query",
			flags: map[string]string{"list": "a"},
			query: "a\x00b",
			code:  ErrMatchError,
		},
		{
			name:  "negative number",
			flags: map[string]string{"list": "a", "number": "-1"},
			query: "a",
			code:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLIState(t, filterCmd)
			for name, value := range tt.flags {
				setFlag(t, filterCmd, name, value)
			}

			resp := runFilterJSON(t, tt.query)
			if resp.OK || resp.Error == nil {
				t.Fatalf("expected error response, got ok; data=%s", resp.Data)
			}
			if resp.Error.Code != tt.code {
				t.Fatalf("error code = %q, want %q (message %q)", resp.Error.Code, tt.code, resp.Error.Message)
			}
		})
	}
}

func TestFilterFlagsOverrideConfig(t *testing.T) {
	resetCLIState(t, filterCmd)
	cfg = &config.Config{Filter: config.FilterConfig{Algo: "skim", WinWidth: 80, Number: 10}}

	req, err := resolveRankRequest(filterCmd, "q", nil)
	if err != nil {
		t.Fatalf("resolveRankRequest: %v", err)
	}
	if req.algo != matcher.Skim || req.winwidth != 80 || req.number != 10 {
		t.Fatalf("config defaults not applied: %+v", req)
	}

	setFlag(t, filterCmd, "algo", "fzy")
	setFlag(t, filterCmd, "number", "3")
	req, err = resolveRankRequest(filterCmd, "q", nil)
	if err != nil {
		t.Fatalf("resolveRankRequest: %v", err)
	}
	if req.algo != matcher.Fzy || req.number != 3 || req.winwidth != 80 {
		t.Fatalf("flags did not override config: %+v", req)
	}
}

func TestFilterAlgoFlagRejectsUnknown(t *testing.T) {
	resetCLIState(t, filterCmd)
	if err := filterCmd.Flags().Set("algo", "regex"); err == nil {
		t.Fatal("expected unknown algorithm to be rejected")
	}
}
