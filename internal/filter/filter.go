package filter

import (
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/voice"
)

// Options holds all filter criteria for a search session.
type Options struct {
	Price       voice.PriceRange
	Category    string
	InStockOnly bool
	Sort        string
	Limit       int
}

// Apply filters and orders products according to the given options.
// Without a sort mode the incoming relevance order is kept.
func Apply(products []catalog.Product, opts Options) []catalog.Product {
	result := products

	if !opts.Price.IsZero() {
		result = where(result, func(p catalog.Product) bool {
			return opts.Price.Contains(p.Price)
		})
	}

	if opts.Category != "" {
		matcher := newCategoryMatcher(opts.Category)
		result = where(result, func(p catalog.Product) bool {
			return matcher.matches(p.Category)
		})
	}

	if opts.InStockOnly {
		result = where(result, func(p catalog.Product) bool {
			return p.InStock
		})
	}

	result = sortProducts(result, opts.Sort)

	if opts.Limit > 0 && opts.Limit < len(result) {
		result = result[:opts.Limit]
	}

	return result
}

// Categories returns a map of category name to count across products.
func Categories(products []catalog.Product) map[string]int {
	return catalog.Categories(products)
}

func where(products []catalog.Product, fn func(catalog.Product) bool) []catalog.Product {
	var result []catalog.Product
	for _, p := range products {
		if fn(p) {
			result = append(result, p)
		}
	}
	return result
}
