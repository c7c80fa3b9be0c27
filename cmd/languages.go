package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/config"
)

type languageJSON struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List recognition languages",
	Example: `  voicecart languages
  voicecart listen --lang fr-FR`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if flagJSON {
			out := make([]languageJSON, 0, len(config.SupportedLanguages))
			for _, l := range config.SupportedLanguages {
				out = append(out, languageJSON{Code: l.Code, Name: l.Name, Current: l.Code == cfg.Language})
			}
			return printJSON(cmd, out)
		}

		current := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		for _, l := range config.SupportedLanguages {
			line := fmt.Sprintf("  %-6s %s", l.Code, l.Name)
			if l.Code == cfg.Language {
				line = current.Render(line + "  (current)")
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
