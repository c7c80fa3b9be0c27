package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/filter"
	"github.com/tayloree/voicecart/internal/voice"
)

func ptr(f float64) *float64 { return &f }

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{Name: "iPhone Case", Category: "electronics", Price: 14.99, InStock: true},
		{Name: "Whole Milk", Category: "grocery", Price: 5.99, InStock: true},
		{Name: "Nike Socks", Category: "clothing", Price: 12.99, InStock: false},
		{Name: "Atomic Habits", Category: "books", Price: 16.99, InStock: true},
		{Name: "Bike Lock", Category: "sports", Price: 15.99, InStock: true},
	}
}

func names(products []catalog.Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestApply_NoFilters(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{})
	assert.Equal(t, names(sampleProducts()), names(result))
}

func TestApply_MaxPrice(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{Price: voice.PriceRange{Max: ptr(14.99)}})
	assert.Equal(t, []string{"iPhone Case", "Whole Milk", "Nike Socks"}, names(result))
}

func TestApply_PriceBetween(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{Price: voice.PriceRange{Min: ptr(13), Max: ptr(16)}})
	assert.Equal(t, []string{"iPhone Case", "Bike Lock"}, names(result))
}

func TestApply_Category(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{Category: "books"})
	assert.Equal(t, []string{"Atomic Habits"}, names(result))
}

func TestApply_CategorySynonyms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tech", "iPhone Case"},
		{"Groceries", "Whole Milk"},
		{"dairy", "Whole Milk"},
		{"shoes", "Nike Socks"},
		{"book", "Atomic Habits"},
		{"FITNESS", "Bike Lock"},
	}
	for _, tt := range tests {
		result := filter.Apply(sampleProducts(), filter.Options{Category: tt.input})
		assert.Equal(t, []string{tt.want}, names(result), "category %q", tt.input)
	}
}

func TestApply_UnknownCategory(t *testing.T) {
	assert.Empty(t, filter.Apply(sampleProducts(), filter.Options{Category: "garden"}))
}

func TestApply_InStockOnly(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{InStockOnly: true})
	assert.NotContains(t, names(result), "Nike Socks")
	assert.Len(t, result, 4)
}

func TestApply_SortPrice(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{Sort: "price"})
	assert.Equal(t, []string{"Whole Milk", "Nike Socks", "iPhone Case", "Bike Lock", "Atomic Habits"}, names(result))

	result = filter.Apply(sampleProducts(), filter.Options{Sort: "expensive", Limit: 2})
	assert.Equal(t, []string{"Atomic Habits", "Bike Lock"}, names(result))
}

func TestApply_SortDoesNotMutateInput(t *testing.T) {
	in := sampleProducts()
	_ = filter.Apply(in, filter.Options{Sort: "name"})
	assert.Equal(t, names(sampleProducts()), names(in))
}

func TestApply_Limit(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{Limit: 2})
	assert.Len(t, result, 2)
}

func TestApply_Combined(t *testing.T) {
	result := filter.Apply(sampleProducts(), filter.Options{
		Price:       voice.PriceRange{Max: ptr(16)},
		InStockOnly: true,
		Sort:        "price",
		Limit:       2,
	})
	assert.Equal(t, []string{"Whole Milk", "iPhone Case"}, names(result))
}

func TestNormalizeSortMode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", filter.SortRelevance},
		{"Relevance", filter.SortRelevance},
		{"cheapest", filter.SortPrice},
		{" price ", filter.SortPrice},
		{"price-desc", filter.SortPriceDesc},
		{"a-z", filter.SortName},
		{"bogus", filter.SortRelevance},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, filter.NormalizeSortMode(tt.input), "NormalizeSortMode(%q)", tt.input)
	}
}

func TestCategories(t *testing.T) {
	cats := filter.Categories(sampleProducts())
	assert.Equal(t, 1, cats["electronics"])
	assert.Equal(t, 1, cats["grocery"])
	assert.Len(t, cats, 5)
}
