package catalog

import "strings"

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Dairy", []string{"milk", "cheese", "yogurt", "butter", "cream", "eggs"}},
	{"Produce", []string{"apple", "banana", "orange", "tomato", "lettuce", "carrot", "potato", "onion", "fruit", "vegetable"}},
	{"Meat", []string{"chicken", "beef", "pork", "fish", "turkey", "lamb", "salmon"}},
	{"Bakery", []string{"bread", "bagel", "muffin", "cake", "cookie", "croissant"}},
	{"Beverages", []string{"water", "juice", "soda", "coffee", "tea", "beer", "wine"}},
	{"Snacks", []string{"chips", "crackers", "popcorn", "nuts", "candy", "chocolate"}},
	{"Pantry", []string{"rice", "pasta", "flour", "sugar", "salt", "pepper", "oil", "sauce"}},
	{"Frozen", []string{"ice cream", "frozen", "pizza"}},
	{"Personal Care", []string{"toothpaste", "shampoo", "soap", "deodorant", "tissue"}},
	{"Household", []string{"paper towel", "cleaner", "detergent", "trash bag"}},
}

// OtherCategory is assigned to names no keyword recognizes.
const OtherCategory = "Other"

// Categorize guesses a shelf category for an item name without a catalog
// entry. The first category with a keyword contained in the name wins.
func Categorize(name string) string {
	n := strings.ToLower(name)
	for _, c := range categoryKeywords {
		for _, k := range c.keywords {
			if strings.Contains(n, k) {
				return c.category
			}
		}
	}
	return OtherCategory
}
