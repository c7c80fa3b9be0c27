package catalog

import (
	"sort"
	"strings"
)

// Search returns the products matching query, most relevant first.
//
// Words of two characters or fewer must start a word of the name or brand,
// or start the category. Longer words match anywhere in name, brand or
// category. Products are ranked by how many distinct query words they
// contain; ties keep catalog order.
func Search(products []Product, query string) []Product {
	words := queryWords(query)
	if len(words) == 0 {
		return nil
	}

	type scored struct {
		product Product
		score   int
	}
	var matches []scored
	for _, p := range products {
		if !matchesAny(p, words) {
			continue
		}
		matches = append(matches, scored{product: p, score: relevance(p, words)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]Product, len(matches))
	for i, m := range matches {
		result[i] = m.product
	}
	return result
}

func queryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	words := fields[:0]
	for _, w := range fields {
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

func matchesAny(p Product, words []string) bool {
	name := strings.ToLower(p.Name)
	brand := strings.ToLower(p.Brand)
	category := strings.ToLower(p.Category)

	for _, w := range words {
		if len(w) <= 2 {
			if hasWordPrefix(name, w) || hasWordPrefix(brand, w) || strings.HasPrefix(category, w) {
				return true
			}
			continue
		}
		if strings.Contains(name, w) || strings.Contains(brand, w) || strings.Contains(category, w) {
			return true
		}
	}
	return false
}

func relevance(p Product, words []string) int {
	text := strings.ToLower(p.Name + " " + p.Brand + " " + p.Category)
	score := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			score++
		}
	}
	return score
}

func hasWordPrefix(text, prefix string) bool {
	for _, w := range strings.Fields(text) {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}
