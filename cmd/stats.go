package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/display"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show list totals",
	Example: `  voicecart stats
  voicecart stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		st := a.store.Stats()
		if flagJSON {
			return display.PrintStatsJSON(cmd.OutOrStdout(), st)
		}
		display.PrintStats(cmd.OutOrStdout(), st)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show purchase history and recent searches",
	Example: `  voicecart history
  voicecart history --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		history, searches := a.store.History(), a.store.Searches()
		if flagJSON {
			return display.PrintHistoryJSON(cmd.OutOrStdout(), history, searches)
		}
		display.PrintHistory(cmd.OutOrStdout(), history, searches)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, historyCmd)
}
