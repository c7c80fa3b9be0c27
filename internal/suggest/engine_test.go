package suggest_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/suggest"
)

var november = time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)

func newEngine(p catalog.Provider, opts ...suggest.Option) *suggest.Engine {
	base := []suggest.Option{
		suggest.WithClock(func() time.Time { return november }),
		suggest.WithRand(rand.New(rand.NewSource(1))),
	}
	return suggest.NewEngine(p, append(base, opts...)...)
}

func items(names ...string) []shopping.Item {
	out := make([]shopping.Item, len(names))
	for i, n := range names {
		out[i] = shopping.Item{ID: n, Name: n, Quantity: 1}
	}
	return out
}

func names(s []suggest.Suggestion) []string {
	var out []string
	for _, v := range s {
		out = append(out, v.Name)
	}
	return out
}

type failingProvider struct{}

func (failingProvider) Search(context.Context, string) ([]catalog.Product, error) {
	return nil, errors.New("catalog down")
}

func TestSuggest_SeasonalOnly(t *testing.T) {
	got := newEngine(nil).Suggest(context.Background(), nil, nil, nil)
	assert.Equal(t, []string{"Pumpkin", "Butternut Squash"}, names(got))
	assert.Equal(t, suggest.Seasonal, got[0].Kind)
	assert.Equal(t, "In season now", got[0].Reason)
}

func TestSuggest_SeasonalSkipsListed(t *testing.T) {
	got := newEngine(nil).Suggest(context.Background(), items("pumpkin"), nil, nil)
	assert.Equal(t, []string{"Butternut Squash", "Brussels Sprouts"}, names(got))
}

func TestSuggest_FrequentExcludesListed(t *testing.T) {
	history := []shopping.PurchaseRecord{
		{ItemName: "Eggs", Frequency: 2},
		{ItemName: "Milk", Frequency: 5},
	}
	got := newEngine(nil).Suggest(context.Background(), items("EGGS"), history, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "Milk", got[0].Name)
	assert.Equal(t, suggest.Frequent, got[0].Kind)
	assert.Equal(t, "You buy this often (5 times)", got[0].Reason)
	assert.NotContains(t, names(got), "Eggs")
}

func TestSuggest_DedupeKeepsEarlierSource(t *testing.T) {
	history := []shopping.PurchaseRecord{{ItemName: "pumpkin", Frequency: 3}}
	got := newEngine(nil).Suggest(context.Background(), nil, history, nil)

	assert.Equal(t, []string{"pumpkin", "Butternut Squash"}, names(got))
	assert.Equal(t, suggest.Frequent, got[0].Kind)
}

func TestSuggest_TruncatesToLimit(t *testing.T) {
	history := []shopping.PurchaseRecord{
		{ItemName: "A1", Frequency: 9},
		{ItemName: "B2", Frequency: 8},
		{ItemName: "C3", Frequency: 7},
		{ItemName: "D4", Frequency: 6},
		{ItemName: "E5", Frequency: 5},
		{ItemName: "F6", Frequency: 4},
	}
	got := newEngine(nil).Suggest(context.Background(), nil, history, nil)
	assert.Equal(t, []string{"A1", "B2", "C3", "D4", "E5", "Pumpkin"}, names(got))

	got = newEngine(nil, suggest.WithLimit(2)).Suggest(context.Background(), nil, history, nil)
	assert.Len(t, got, 2)
}

func TestSuggest_SubstituteAndComplement(t *testing.T) {
	got := newEngine(nil).Suggest(context.Background(), items("Whole Milk", "Whole Wheat Bread"), nil, nil)

	require.Len(t, got, 4)
	assert.Equal(t, suggest.Suggestion{Name: "Almond Milk", Reason: "Alternative to Whole Milk", Kind: suggest.Substitute}, got[2])
	assert.Equal(t, suggest.Suggestion{Name: "Butter", Reason: "Goes well with Whole Wheat Bread", Kind: suggest.Complementary}, got[3])
}

func TestSuggest_FirstMatchingKeyOnly(t *testing.T) {
	// "milk" is checked before "almond milk" and its substitute is already listed.
	got := newEngine(nil).Suggest(context.Background(), items("Almond Milk"), nil, nil)

	assert.Equal(t, []string{"Pumpkin", "Butternut Squash"}, names(got))
	for _, s := range got {
		assert.NotEqual(t, suggest.Substitute, s.Kind)
	}
}

func TestSuggest_OnlyFirstThreeItems(t *testing.T) {
	got := newEngine(nil).Suggest(context.Background(), items("Apples", "Bananas", "Carrots", "Pasta"), nil, nil)
	assert.NotContains(t, names(got), "Whole Grain Pasta")
	assert.NotContains(t, names(got), "Tomato Sauce")
}

func TestSuggest_Personalized(t *testing.T) {
	searches := []shopping.SearchEntry{{Query: "fresh fruit"}}
	got := newEngine(nil).Suggest(context.Background(), nil, nil, searches)

	require.Len(t, got, 4)
	assert.Equal(t, suggest.Personalized, got[2].Kind)
	assert.Equal(t, "Based on your interest in fruits", got[2].Reason)
	assert.Contains(t, []string{"Strawberries", "Blueberries", "Oranges", "Grapes", "Pineapple", "Apples", "Bananas"}, got[2].Name)
	assert.Equal(t, "Matches your preference for fresh", got[3].Reason)
	assert.Contains(t, []string{"Organic Apples", "Premium Coffee", "Fresh Bread", "Natural Yogurt", "Low-Fat Milk", "Gluten-Free Pasta"}, got[3].Name)
}

func TestSuggest_PersonalizedIsDeterministicWithSeed(t *testing.T) {
	searches := []shopping.SearchEntry{{Query: "snacks and dairy"}}
	a := newEngine(nil).Suggest(context.Background(), nil, nil, searches)
	b := newEngine(nil).Suggest(context.Background(), nil, nil, searches)
	assert.Equal(t, a, b)
}

func TestSuggest_PersonalizedCappedAtTwo(t *testing.T) {
	searches := []shopping.SearchEntry{{Query: "organic fruit vegetables dairy meat"}}
	got := newEngine(nil).Suggest(context.Background(), nil, nil, searches)

	count := 0
	for _, s := range got {
		if s.Kind == suggest.Personalized {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestSuggest_CatalogFromRecentSearches(t *testing.T) {
	provider := catalog.NewMemory([]catalog.Product{
		{Name: "Whole Wheat Bread", Category: "grocery", Price: 6.99, InStock: true},
		{Name: "Sourdough Bread", Category: "grocery", Price: 5.49, InStock: false},
		{Name: "Bread Knife", Category: "home", Price: 49.99, InStock: true},
		{Name: "Road Bike", Category: "sports", Price: 899, InStock: true},
	}, 0)
	searches := []shopping.SearchEntry{{Query: "bread"}, {Query: "Bread"}, {Query: "bike"}}

	got := newEngine(provider).Suggest(context.Background(), nil, nil, searches)

	assert.Equal(t, []string{"Pumpkin", "Butternut Squash", "Whole Wheat Bread", "Bread Knife"}, names(got))
	assert.Equal(t, "Found in store - $6.99", got[2].Reason)
	assert.Equal(t, suggest.Personalized, got[2].Kind)
	require.NotNil(t, got[2].Price)
	assert.Equal(t, 6.99, *got[2].Price)
}

func TestSuggest_CatalogAccessories(t *testing.T) {
	got := newEngine(catalog.NewBuiltin(0)).Suggest(context.Background(), items("iPhone 15"), nil, nil)

	assert.Equal(t, []string{"Pumpkin", "Butternut Squash", "iPhone Screen Protector", "iPhone Case"}, names(got))
	assert.Equal(t, suggest.Complementary, got[2].Kind)
	assert.Equal(t, "Complements your iPhone 15", got[2].Reason)
	require.NotNil(t, got[3].Price)
	assert.Equal(t, 14.99, *got[3].Price)
}

func TestSuggest_AccessoryGroups(t *testing.T) {
	provider := catalog.NewMemory([]catalog.Product{
		{Name: "Xbox Wireless Controller", Category: "electronics", Price: 59.99, InStock: true},
		{Name: "Kryptonite Bike Lock", Category: "sports", Price: 34.99, InStock: true},
		{Name: "Treadmill Mat", Category: "sports", Price: 24.99, InStock: false},
	}, 0)

	tests := []struct {
		item string
		want []string
	}{
		{"Xbox Series X", []string{"Pumpkin", "Butternut Squash", "Xbox Wireless Controller"}},
		{"Bicycle Helmet", []string{"Pumpkin", "Butternut Squash", "Kryptonite Bike Lock"}},
		{"Road Bike", []string{"Pumpkin", "Butternut Squash"}},
		{"Folding Treadmill", []string{"Pumpkin", "Butternut Squash"}},
	}
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			got := newEngine(provider).Suggest(context.Background(), items(tt.item), nil, nil)
			assert.Equal(t, tt.want, names(got))
			if len(got) == 3 {
				assert.Equal(t, suggest.Complementary, got[2].Kind)
				assert.Equal(t, "Complements your "+tt.item, got[2].Reason)
			}
		})
	}
}

func TestSuggest_ProviderErrorsAreZeroResults(t *testing.T) {
	searches := []shopping.SearchEntry{{Query: "bread"}}
	got := newEngine(failingProvider{}).Suggest(context.Background(), items("iPhone"), nil, searches)
	assert.Equal(t, []string{"Pumpkin", "Butternut Squash"}, names(got))
}
