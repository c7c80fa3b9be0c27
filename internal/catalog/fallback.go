package catalog

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"
)

type fallbackTemplate struct {
	keys  []string
	items []fallbackItem
}

type fallbackItem struct {
	name     string
	category string
	brand    string
	size     string
	price    float64
}

var fallbackTemplates = []fallbackTemplate{
	{keys: []string{"potatoes", "potato"}, items: []fallbackItem{
		{"Russet Potatoes", "grocery", "Fresh Farms", "5 lb bag", 3.99},
		{"Red Potatoes", "grocery", "Organic Valley", "3 lb bag", 4.49},
		{"Sweet Potatoes", "grocery", "Fresh Farms", "2 lb", 2.99},
	}},
	{keys: []string{"apples", "apple"}, items: []fallbackItem{
		{"Gala Apples", "grocery", "Fresh Farms", "3 lb bag", 4.99},
		{"Honeycrisp Apples", "grocery", "Orchard Select", "2 lb", 5.99},
		{"Granny Smith Apples", "grocery", "Fresh Farms", "3 lb bag", 4.49},
	}},
	{keys: []string{"milk"}, items: []fallbackItem{
		{"2% Milk", "grocery", "Organic Valley", "1 gallon", 4.99},
		{"Skim Milk", "grocery", "Horizon", "1 gallon", 4.79},
		{"Almond Milk", "grocery", "Silk", "half gallon", 3.99},
	}},
	{keys: []string{"bread"}, items: []fallbackItem{
		{"White Bread", "grocery", "Wonder", "20 oz", 2.99},
		{"Sourdough Bread", "grocery", "Boudin", "24 oz", 5.49},
		{"Multigrain Bread", "grocery", "Nature's Own", "20 oz", 3.99},
	}},
	{keys: []string{"eggs"}, items: []fallbackItem{
		{"Large White Eggs", "grocery", "Eggland's Best", "12 count", 3.99},
		{"Brown Eggs", "grocery", "Pete and Gerry's", "12 count", 5.49},
		{"Organic Eggs", "grocery", "Vital Farms", "18 count", 8.99},
	}},
	{keys: []string{"cheese"}, items: []fallbackItem{
		{"Cheddar Cheese", "grocery", "Tillamook", "8 oz", 4.99},
		{"Mozzarella Cheese", "grocery", "Galbani", "16 oz", 5.99},
		{"Swiss Cheese", "grocery", "Sargento", "8 oz", 4.49},
	}},
	{keys: []string{"chicken"}, items: []fallbackItem{
		{"Chicken Thighs", "grocery", "Perdue", "2 lb", 6.99},
		{"Whole Chicken", "grocery", "Foster Farms", "4 lb", 8.99},
		{"Chicken Wings", "grocery", "Tyson", "2 lb", 7.99},
	}},
	{keys: []string{"rice"}, items: []fallbackItem{
		{"White Rice", "grocery", "Uncle Ben's", "2 lb", 2.99},
		{"Jasmine Rice", "grocery", "Mahatma", "5 lb", 6.99},
		{"Basmati Rice", "grocery", "Tilda", "2 lb", 5.49},
	}},
	{keys: []string{"pasta"}, items: []fallbackItem{
		{"Spaghetti", "grocery", "Barilla", "16 oz", 1.99},
		{"Penne Pasta", "grocery", "Barilla", "16 oz", 1.99},
		{"Whole Wheat Pasta", "grocery", "De Cecco", "16 oz", 2.99},
	}},
}

var (
	genericBrands = []string{"Generic", "Store Brand", "Value Line", "Premium Choice"}
	genericSizes  = []string{"Standard", "Regular", "Medium", "Large"}
)

// Fallback invents plausible products for queries the catalog cannot answer.
// Every product it returns is marked Estimated.
type Fallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallback creates a generator drawing price and stock variation from rng.
func NewFallback(rng *rand.Rand) *Fallback {
	return &Fallback{rng: rng}
}

// Generate returns estimated products for query. Known staples yield their
// templated variants with prices varied by up to 20% and 90% stock odds.
// Anything else yields one generic product.
func (f *Fallback) Generate(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range fallbackTemplates {
		if !containsAny(q, t.keys) {
			continue
		}
		products := make([]Product, 0, len(t.items))
		for _, it := range t.items {
			products = append(products, Product{
				Name:      it.name,
				Category:  it.category,
				Brand:     it.brand,
				Size:      it.size,
				Price:     roundCents(it.price * (0.8 + f.rng.Float64()*0.4)),
				InStock:   f.rng.Float64() < 0.9,
				Estimated: true,
			})
		}
		return products
	}

	return []Product{{
		Name:      titleWords(q),
		Category:  "grocery",
		Brand:     genericBrands[f.rng.Intn(len(genericBrands))],
		Size:      genericSizes[f.rng.Intn(len(genericSizes))],
		Price:     roundCents(1 + f.rng.Float64()*10),
		InStock:   f.rng.Float64() < 0.95,
		Estimated: true,
	}}
}

// WithFallback answers from Primary and, when Primary finds nothing, from
// Fallback.
type WithFallback struct {
	Primary  Provider
	Fallback *Fallback
}

// Search implements Provider.
func (w WithFallback) Search(ctx context.Context, query string) ([]Product, error) {
	products, err := w.Primary.Search(ctx, query)
	if err != nil || len(products) > 0 || w.Fallback == nil {
		return products, err
	}
	return w.Fallback.Generate(query), nil
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
