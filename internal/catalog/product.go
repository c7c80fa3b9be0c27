package catalog

import "context"

// Product is a read-only catalog entry.
type Product struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	InStock  bool    `json:"inStock"`
	// Estimated marks a generated product whose price is a guess. Estimated
	// products are shown in search results but never added to a list.
	Estimated bool `json:"estimated,omitempty"`
}

// Provider answers free-text product queries, most relevant first.
type Provider interface {
	Search(ctx context.Context, query string) ([]Product, error)
}

// Categories returns a map of category name to product count.
func Categories(products []Product) map[string]int {
	cats := make(map[string]int)
	for _, p := range products {
		cats[p.Category]++
	}
	return cats
}
