package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/filter"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories and their product counts",
	Example: `  voicecart categories
  voicecart categories --catalog-url http://localhost:8080 --json`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var cats map[string]int
	if cfg.CatalogURL != "" {
		counts, err := api.NewClient(cfg.CatalogURL).FetchCategories(cmd.Context())
		if err != nil {
			return upstreamError("fetching categories", err)
		}
		cats = make(map[string]int, len(counts))
		for _, c := range counts {
			cats[c.Name] = c.Count
		}
	} else {
		cats = filter.Categories(catalog.NewBuiltin(0).Products())
	}

	if len(cats) == 0 {
		return notFoundError("the catalog has no products")
	}
	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), cats)
	}
	display.PrintCategories(cmd.OutOrStdout(), cats)
	return nil
}
