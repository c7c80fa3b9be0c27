package catalog

import "strings"

// Resolve picks the product an add request should use from ranked search
// results. An in-stock product whose name equals phrase wins; otherwise the
// highest ranked in-stock product does. Estimated products never resolve.
func Resolve(results []Product, phrase string) (Product, bool) {
	phrase = strings.TrimSpace(phrase)
	var best *Product
	for i := range results {
		p := &results[i]
		if !p.InStock || p.Estimated {
			continue
		}
		if strings.EqualFold(p.Name, phrase) {
			return *p, true
		}
		if best == nil {
			best = p
		}
	}
	if best == nil {
		return Product{}, false
	}
	return *best, true
}

// FindByName returns the first product named name, ignoring case.
func FindByName(products []Product, name string) (Product, bool) {
	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}
