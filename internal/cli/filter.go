package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/maple/internal/matcher"
	"github.com/aidanlsb/maple/internal/present"
	"github.com/aidanlsb/maple/internal/source"
	"github.com/aidanlsb/maple/internal/ui"
)

// stdinIsTerminal is swapped out in tests.
var stdinIsTerminal = ui.StdinIsTerminal

var (
	filterInput    string
	filterCommand  string
	filterList     []string
	filterAlgo     = matcher.Fzy
	filterNumber   int
	filterWinWidth int
	filterIcon     bool
	filterFormat   = present.FormatText
)

var filterCmd = &cobra.Command{
	Use:   "filter <query>",
	Short: "Fuzzy filter lines and rank them by score",
	Long: `Fuzzy filter lines and rank them by score.

Lines come from --input, --cmd, --list or standard input. With --number,
only the best N lines are shown and long ones are shortened around their
matched characters; the JSON output then carries a truncated_map from
each shortened line back to the original.`,
	Example: `  git ls-files | maple filter mnfg
  maple filter main --cmd 'fd -t f' --number 20 --icon
  maple filter rank --input files.txt --algo skim --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	src, err := filterSource()
	if err != nil {
		return handleError(ErrInvalidInput, err, "Pass --input FILE, --cmd CMD or --list a,b, or pipe lines on stdin")
	}

	req, err := resolveRankRequest(cmd, strings.Join(args, " "), src)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	req.icons = filterIcon
	if !cmd.Flags().Changed("icon") {
		req.icons = getConfig().Filter.Icon
	}
	return runRank(commandContext(cmd), req)
}

// filterSource picks the single candidate source named by the flags,
// falling back to piped stdin.
func filterSource() (source.Source, error) {
	chosen := 0
	for _, set := range []bool{filterInput != "", filterCommand != "", len(filterList) > 0} {
		if set {
			chosen++
		}
	}
	if chosen > 1 {
		return nil, fmt.Errorf("--input, --cmd and --list are mutually exclusive")
	}

	switch {
	case filterInput == "-":
		return source.Reader(os.Stdin, "stdin"), nil
	case filterInput != "":
		return source.File(filterInput), nil
	case filterCommand != "":
		return source.Exec(filterCommand, ""), nil
	case len(filterList) > 0:
		return source.List(filterList), nil
	}

	if stdinIsTerminal() {
		return nil, fmt.Errorf("no input lines")
	}
	return source.Reader(os.Stdin, "stdin"), nil
}

// resolveRankRequest applies flag > config > default precedence to the
// options filter and blines share.
func resolveRankRequest(cmd *cobra.Command, query string, src source.Source) (rankRequest, error) {
	c := getConfig()
	req := rankRequest{
		query:    query,
		src:      src,
		algo:     filterAlgo,
		number:   filterNumber,
		winwidth: filterWinWidth,
		format:   filterFormat,
	}

	flags := cmd.Flags()
	if !flags.Changed("algo") {
		algo, err := c.GetAlgo()
		if err != nil {
			return req, err
		}
		req.algo = algo
	}
	if !flags.Changed("number") {
		req.number = c.Filter.Number
	}
	if !flags.Changed("winwidth") {
		req.winwidth = c.Filter.WinWidth
	}

	if req.number < 0 {
		return req, fmt.Errorf("--number must not be negative, got %d", req.number)
	}
	if req.winwidth < 0 {
		return req, fmt.Errorf("--winwidth must not be negative, got %d", req.winwidth)
	}
	return req, nil
}

func init() {
	addRankFlags(filterCmd)
	filterCmd.Flags().StringVarP(&filterInput, "input", "i", "", "Read lines from a file (- for stdin)")
	filterCmd.Flags().StringVar(&filterCommand, "cmd", "", "Read lines from a shell command's output")
	filterCmd.Flags().StringSliceVar(&filterList, "list", nil, "Filter a comma-separated list of lines")
	filterCmd.Flags().BoolVar(&filterIcon, "icon", false, "Prepend a file-type icon to each line")

	rootCmd.AddCommand(filterCmd)
}

// addRankFlags registers the ranking and display flags filter and blines share.
func addRankFlags(cmd *cobra.Command) {
	cmd.Flags().Var(&filterAlgo, "algo", "Match algorithm (fzy|skim)")
	cmd.Flags().IntVarP(&filterNumber, "number", "n", 0, "Show only the top N lines, truncated to --winwidth")
	cmd.Flags().IntVarP(&filterWinWidth, "winwidth", "w", 0, "Display width for truncated lines (default 62)")
	cmd.Flags().VarP(&filterFormat, "format", "f", "Output format (text|json|jsonl|yaml)")
}
