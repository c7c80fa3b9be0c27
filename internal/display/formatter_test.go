package display_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/suggest"
)

func ptr(f float64) *float64 { return &f }

var addedAt = time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC)

func sampleItems() []shopping.Item {
	return []shopping.Item{
		{ID: "0f8a1c2e-1111-2222-3333-444455556666", Name: "Whole Milk", Quantity: 2, Category: "grocery", AddedAt: addedAt, Price: ptr(5.99)},
		{ID: "9b7d3e4f-aaaa-bbbb-cccc-ddddeeeeffff", Name: "Pumpkin", Quantity: 1, Category: "Other", AddedAt: addedAt, Completed: true},
	}
}

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	display.PrintItems(&buf, sampleItems())
	output := buf.String()

	assert.Contains(t, output, "Shopping List")
	assert.Contains(t, output, "2 items")
	assert.Contains(t, output, "0f8a1c2e")
	assert.NotContains(t, output, "0f8a1c2e-1111")
	assert.Contains(t, output, "Whole Milk")
	assert.Contains(t, output, "×2")
	assert.Contains(t, output, "$5.99")
	assert.Contains(t, output, "[x]")
	assert.Contains(t, output, "Pumpkin")
}

func TestPrintItems_Empty(t *testing.T) {
	var buf bytes.Buffer
	display.PrintItems(&buf, nil)
	assert.Contains(t, buf.String(), "Your list is empty")
}

func TestPrintItemsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintItemsJSON(&buf, sampleItems()))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Whole Milk", out[0]["name"])
	assert.Equal(t, 5.99, out[0]["price"])
	assert.Equal(t, "2024-11-05T09:30:00Z", out[0]["addedAt"])
	assert.NotContains(t, out[1], "price")
	assert.Equal(t, true, out[1]["completed"])
}

func TestPrintItemsJSON_NilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintItemsJSON(&buf, nil))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestPrintSearchResults(t *testing.T) {
	products := []catalog.Product{
		{Name: "iPhone Case", Category: "electronics", Brand: "Generic", Size: "Clear", Price: 14.99, InStock: true},
		{Name: "Russet Potatoes", Category: "grocery", Brand: "Fresh Farms", Price: 3.5, Estimated: true},
	}
	var buf bytes.Buffer
	display.PrintSearchResults(&buf, "case", products)
	output := buf.String()

	assert.Contains(t, output, `Results for "case"`)
	assert.Contains(t, output, "2 items")
	assert.Contains(t, output, "$14.99")
	assert.Contains(t, output, "Generic | Clear | electronics | in stock")
	assert.Contains(t, output, "EST")
	assert.Contains(t, output, "out of stock")
}

func TestPrintSearchResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintSearchResultsJSON(&buf, "unicorn", nil))

	var resp api.SearchResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "unicorn", resp.Query)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Products)
}

func TestPrintSuggestions(t *testing.T) {
	suggestions := []suggest.Suggestion{
		{Name: "Whole Milk", Reason: "You usually buy this", Kind: suggest.Frequent, Price: ptr(5.99)},
		{Name: "Pumpkin", Reason: "Perfect for fall season", Kind: suggest.Seasonal},
	}
	var buf bytes.Buffer
	display.PrintSuggestions(&buf, suggestions)
	output := buf.String()

	assert.Contains(t, output, "1.")
	assert.Contains(t, output, "Whole Milk")
	assert.Contains(t, output, "$5.99")
	assert.Contains(t, output, "[seasonal]")
	assert.Contains(t, output, "Perfect for fall season")
}

func TestPrintSuggestionsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintSuggestionsJSON(&buf, []suggest.Suggestion{
		{Name: "Pumpkin", Reason: "Perfect for fall season", Kind: suggest.Seasonal},
	}))
	assert.JSONEq(t, `[{"name":"Pumpkin","reason":"Perfect for fall season","kind":"seasonal"}]`, buf.String())
}

func TestPrintStats(t *testing.T) {
	st := shopping.ComputeStats(sampleItems(), []shopping.PurchaseRecord{
		{ItemName: "Whole Milk", Frequency: 4, Category: "grocery", LastPurchased: addedAt},
	})
	var buf bytes.Buffer
	display.PrintStats(&buf, st)
	output := buf.String()

	assert.Contains(t, output, "2 (1 done, 1 to go)")
	assert.Contains(t, output, "Whole Milk (4×)")
	assert.Contains(t, output, "$11.98")
}

func TestPrintHistory(t *testing.T) {
	history := []shopping.PurchaseRecord{
		{ItemName: "Pumpkin", Frequency: 1, Category: "Other", LastPurchased: addedAt},
		{ItemName: "Whole Milk", Frequency: 3, Category: "grocery", LastPurchased: addedAt},
	}
	searches := []shopping.SearchEntry{{Query: "milk", Timestamp: addedAt}}

	var buf bytes.Buffer
	display.PrintHistory(&buf, history, searches)
	output := buf.String()

	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Whole Milk")), bytes.Index(buf.Bytes(), []byte("Pumpkin")))
	assert.Contains(t, output, "Recent searches")
	assert.Contains(t, output, "milk")
}

func TestPrintHistoryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintHistoryJSON(&buf, nil, nil))
	assert.JSONEq(t, `{"history":[],"searches":[]}`, buf.String())
}

func TestPrintCategories(t *testing.T) {
	var buf bytes.Buffer
	display.PrintCategories(&buf, map[string]int{"grocery": 3, "books": 5})
	output := buf.String()

	assert.Contains(t, output, "books")
	assert.Contains(t, output, "5 products")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("books")), bytes.Index(buf.Bytes(), []byte("grocery")))
}

func TestPrintCategoriesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintCategoriesJSON(&buf, map[string]int{"grocery": 3}))
	assert.JSONEq(t, `{"grocery":3}`, buf.String())
}

func TestPrintOutcome(t *testing.T) {
	item := sampleItems()[0]

	var buf bytes.Buffer
	display.PrintOutcome(&buf, assistant.Outcome{Kind: "add", Item: &item, Query: "milk", Message: "Added Whole Milk for $5.99"})
	assert.Contains(t, buf.String(), "Added Whole Milk for $5.99")
	assert.NotContains(t, buf.String(), "Results for")

	buf.Reset()
	display.PrintOutcome(&buf, assistant.Outcome{
		Kind:    "search",
		Query:   "case",
		Results: []catalog.Product{{Name: "iPhone Case", Price: 14.99, InStock: true}},
		Message: "Found 1 items",
	})
	assert.Contains(t, buf.String(), `Results for "case"`)
	assert.Contains(t, buf.String(), "Found 1 items")
}

func TestPrintOutcomeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintOutcomeJSON(&buf, assistant.Outcome{Kind: "clear-all", Cleared: 3, Message: "Cleared all items from your list"}))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "clear-all", out["intent"])
	assert.Equal(t, float64(3), out["cleared"])
	assert.NotContains(t, out, "Intent")
}

func TestPrintErrorAndWarning(t *testing.T) {
	var buf bytes.Buffer
	display.PrintError(&buf, "boom")
	display.PrintWarning(&buf, "careful")
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "careful")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0f8a1c2e", display.ShortID("0f8a1c2e-1111"))
	assert.Equal(t, "abc", display.ShortID("abc"))
}
