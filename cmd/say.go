package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/voice"
)

var sayCmd = &cobra.Command{
	Use:   "say <transcript...>",
	Short: "Apply one spoken command to the list",
	Long: "Parses a transcript as a list command (add, remove or clear all) and\n" +
		"applies it. Added items are looked up in the catalog for price and category.",
	Example: `  voicecart say "add 2 milk"
  voicecart say "I need 3 whole wheat bread"
  voicecart say "remove bread"
  voicecart say "clear all" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

func init() {
	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.assistant.HandleCommand(cmd.Context(), joinArgs(args))
	if err != nil {
		return outcomeError(out, err)
	}
	return printOutcome(cmd.OutOrStdout(), out)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func printOutcome(w io.Writer, out assistant.Outcome) error {
	if flagJSON {
		return display.PrintOutcomeJSON(w, out)
	}
	display.PrintOutcome(w, out)
	return nil
}

// outcomeError maps an assistant failure to a CLI error.
func outcomeError(out assistant.Outcome, err error) error {
	var na *assistant.NotAvailableError
	switch {
	case errors.Is(err, voice.ErrNotRecognized):
		return notRecognizedError(out.Message)
	case errors.As(err, &na):
		suggestions := make([]string, 0, len(na.Hints)+1)
		for _, h := range na.Hints {
			suggestions = append(suggestions, fmt.Sprintf("Did you mean %q?", h))
		}
		suggestions = append(suggestions, fmt.Sprintf("voicecart search %q", na.Phrase))
		return notFoundError(out.Message, suggestions...)
	case errors.Is(err, shopping.ErrItemNotFound):
		return notFoundError(out.Message, "voicecart list")
	default:
		return internalError("handling transcript", err)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
}
