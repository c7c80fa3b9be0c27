package filter

import "strings"

var categorySynonyms = map[string][]string{
	"electronics": {"electronic", "tech", "gadget", "gadgets", "phones", "laptops"},
	"clothing":    {"clothes", "apparel", "fashion", "shoes", "wear"},
	"home":        {"kitchen", "household", "appliances", "home goods"},
	"books":       {"book", "reading", "novels"},
	"sports":      {"sport", "fitness", "outdoors", "outdoor"},
	"beauty":      {"cosmetics", "skincare", "skin care", "personal care"},
	"toys":        {"toy", "games", "kids"},
	"grocery":     {"groceries", "food", "pantry", "produce", "dairy"},
	"baby":        {"infant", "babies", "nursery"},
}

type categoryMatcher struct {
	exactAliases []string
	normalized   map[string]struct{}
}

func newCategoryMatcher(wanted string) categoryMatcher {
	aliases := categoryAliasList(wanted)
	if len(aliases) == 0 {
		return categoryMatcher{}
	}

	normalized := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		normalized[normalizeCategory(alias)] = struct{}{}
	}

	return categoryMatcher{
		exactAliases: aliases,
		normalized:   normalized,
	}
}

func categoryAliasList(wanted string) []string {
	raw := strings.TrimSpace(wanted)
	group := resolveCategoryGroup(wanted)
	if raw == "" && group == "" {
		return nil
	}

	out := make([]string, 0, 2+len(categorySynonyms[group]))
	addAlias := func(alias string) {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			return
		}
		for _, existing := range out {
			if strings.EqualFold(existing, alias) {
				return
			}
		}
		out = append(out, alias)
	}

	addAlias(raw)
	addAlias(group)
	for _, s := range categorySynonyms[group] {
		addAlias(s)
	}
	return out
}

// resolveCategoryGroup maps a user-supplied category or synonym onto a
// catalog category, falling back to the normalized input.
func resolveCategoryGroup(wanted string) string {
	norm := normalizeCategory(wanted)
	if norm == "" {
		return ""
	}

	for key, synonyms := range categorySynonyms {
		if normalizeCategory(key) == norm {
			return key
		}
		for _, s := range synonyms {
			if normalizeCategory(s) == norm {
				return key
			}
		}
	}
	return norm
}

func (m categoryMatcher) matches(category string) bool {
	trimmed := strings.TrimSpace(category)
	for _, alias := range m.exactAliases {
		if strings.EqualFold(trimmed, alias) {
			return true
		}
	}
	_, ok := m.normalized[normalizeCategory(trimmed)]
	return ok
}

func normalizeCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")
	switch {
	case len(s) > 4 && strings.HasSuffix(s, "ies"):
		s = strings.TrimSuffix(s, "ies") + "y"
	case len(s) > 3 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		s = strings.TrimSuffix(s, "s")
	}
	return s
}
