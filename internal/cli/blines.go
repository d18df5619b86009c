package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/maple/internal/shellquote"
	"github.com/aidanlsb/maple/internal/source"
)

var blinesInput string

var blinesCmd = &cobra.Command{
	Use:   "blines <query>",
	Short: "Fuzzy filter the lines of one file",
	Long: `Fuzzy filter the lines of one file.

Each line is prefixed with its 1-based line number before matching, so
results can be jumped to directly. Icons are never added.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		if strings.TrimSpace(blinesInput) == "" {
			return handleErrorMsg(ErrMissingArgument, "--input is required",
				fmt.Sprintf("Try: maple blines %s --input FILE", shellquote.QuoteIfNeeded(query)))
		}

		req, err := resolveRankRequest(cmd, query, source.Numbered(source.File(blinesInput)))
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		return runRank(commandContext(cmd), req)
	},
}

func init() {
	addRankFlags(blinesCmd)
	blinesCmd.Flags().StringVarP(&blinesInput, "input", "i", "", "File whose lines are filtered")

	rootCmd.AddCommand(blinesCmd)
}
