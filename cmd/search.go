package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tayloree/voicecart/internal/filter"
	"github.com/tayloree/voicecart/internal/voice"
)

var (
	flagMinPrice float64
	flagMaxPrice float64
	flagSort     string
	flagCategory string
	flagLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <transcript...>",
	Short: "Search the catalog by voice transcript",
	Long: "Parses a transcript as a catalog search. Price phrases such as\n" +
		"\"under 20 dollars\" or \"between 10 and 50\" narrow the results; an explicit\n" +
		"\"add ...\" still adds to the list.",
	Example: `  voicecart search "find milk under 6 dollars"
  voicecart search "search for headphones" --sort price --limit 3
  voicecart search laptops --max 1500 --category electronics`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.Float64Var(&flagMinPrice, "min", -1, "Minimum price (negative: no minimum)")
	f.Float64Var(&flagMaxPrice, "max", -1, "Maximum price (negative: no maximum)")
	f.StringVar(&flagSort, "sort", "", "Sort by: relevance, price, price-desc, name")
	f.StringVarP(&flagCategory, "category", "c", "", "Only products in this category")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results shown")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := validateSearchFlags(cmd.Flags()); err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.assistant.SetPriceFilter(priceRangeFromFlags())
	out, err := a.assistant.HandleSearch(cmd.Context(), joinArgs(args))
	if err != nil {
		return outcomeError(out, err)
	}
	if out.Query != "" {
		out.Results = filter.Apply(out.Results, filter.Options{
			Category: flagCategory,
			Sort:     filter.NormalizeSortMode(flagSort),
			Limit:    flagLimit,
		})
	}
	return printOutcome(cmd.OutOrStdout(), out)
}

func validateSearchFlags(flags *pflag.FlagSet) error {
	if flags.Changed("sort") && filter.NormalizeSortMode(flagSort) == filter.SortRelevance && !isRelevanceSort(flagSort) {
		return invalidArgsError(
			fmt.Sprintf("unknown sort %q", flagSort),
			"voicecart search milk --sort price",
		)
	}
	if flagMinPrice >= 0 && flagMaxPrice >= 0 && flagMinPrice > flagMaxPrice {
		return invalidArgsError("--min must not exceed --max", "voicecart search milk --min 2 --max 6")
	}
	if flagLimit < 0 {
		return invalidArgsError("--limit must be zero or greater")
	}
	return nil
}

func isRelevanceSort(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "relevance", "best":
		return true
	}
	return false
}

// priceRangeFromFlags treats negative bounds as unset.
func priceRangeFromFlags() voice.PriceRange {
	var r voice.PriceRange
	if flagMinPrice >= 0 {
		lo := flagMinPrice
		r.Min = &lo
	}
	if flagMaxPrice >= 0 {
		hi := flagMaxPrice
		r.Max = &hi
	}
	return r
}
