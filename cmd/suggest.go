package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/display"
)

var flagAccept int

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest items from history, season and searches",
	Long: "Suggests items based on what you add often, the current season,\n" +
		"substitutes and complements for listed items, and recent searches.\n" +
		"Use --accept N to add the Nth suggestion to the list.",
	Example: `  voicecart suggest
  voicecart suggest --accept 2
  voicecart suggest --json`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&flagAccept, "accept", 0, "Add the Nth suggestion to the list")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if flagAccept < 0 {
		return invalidArgsError("--accept must be a suggestion number starting at 1")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	suggestions := a.suggestEngine().Suggest(cmd.Context(), a.store.Items(), a.store.History(), a.store.Searches())

	if flagAccept == 0 {
		if flagJSON {
			return display.PrintSuggestionsJSON(cmd.OutOrStdout(), suggestions)
		}
		display.PrintSuggestions(cmd.OutOrStdout(), suggestions)
		return nil
	}

	if flagAccept > len(suggestions) {
		return notFoundError(
			fmt.Sprintf("there is no suggestion #%d (%d available)", flagAccept, len(suggestions)),
			"voicecart suggest",
		)
	}
	out, err := a.assistant.AcceptSuggestion(cmd.Context(), suggestions[flagAccept-1])
	if err != nil {
		return outcomeError(out, err)
	}
	return printOutcome(cmd.OutOrStdout(), out)
}
