package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DidYouMean returns up to limit product names that fuzzily resemble phrase.
func DidYouMean(products []Product, phrase string, limit int) []string {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool, len(products))
	var names, display []string
	for _, p := range products {
		if !p.InStock {
			continue
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, key)
		display = append(display, p.Name)
	}

	matches := fuzzy.Find(strings.ReplaceAll(phrase, " ", ""), names)
	var hints []string
	for _, m := range matches {
		hints = append(hints, display[m.Index])
		if len(hints) == limit {
			break
		}
	}
	return hints
}
