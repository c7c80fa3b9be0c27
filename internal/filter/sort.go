package filter

import (
	"sort"
	"strings"

	"github.com/tayloree/voicecart/internal/catalog"
)

const (
	SortRelevance = ""
	SortPrice     = "price"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// NormalizeSortMode maps user spellings onto a sort mode. Unknown values
// fall back to relevance.
func NormalizeSortMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "relevance", "best":
		return SortRelevance
	case "price", "cheap", "cheapest", "low", "price-asc":
		return SortPrice
	case "price-desc", "expensive", "high", "priciest":
		return SortPriceDesc
	case "name", "alpha", "az", "a-z":
		return SortName
	default:
		return SortRelevance
	}
}

func sortProducts(products []catalog.Product, mode string) []catalog.Product {
	var less func(a, b catalog.Product) bool
	switch NormalizeSortMode(mode) {
	case SortPrice:
		less = func(a, b catalog.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b catalog.Product) bool { return a.Price > b.Price }
	case SortName:
		less = func(a, b catalog.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	default:
		return products
	}

	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
