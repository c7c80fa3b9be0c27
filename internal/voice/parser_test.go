package voice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/voicecart/internal/voice"
)

func parseCommand(t *testing.T, transcript string) voice.Intent {
	t.Helper()
	in, err := voice.NewCommandParser().Parse(transcript)
	require.NoError(t, err, "Parse(%q)", transcript)
	return in
}

func TestCommandParser_AddTemplates(t *testing.T) {
	tests := []struct {
		input string
		item  string
		qty   int
		rule  string
	}{
		{"add 3 apples", "apples", 3, "add"},
		{"add apples", "apples", 1, "add"},
		{"add milk to my list", "milk", 1, "add"},
		{"Please add a loaf of bread to the list", "bread", 1, "add"},
		{"could you add 2 bananas", "bananas", 2, "add"},
		{"I need to buy 4 eggs", "eggs", 4, "need"},
		{"i want greek yogurt", "greek yogurt", 1, "need"},
		{"I'd like 2 avocados", "avocados", 2, "need"},
		{"buy coffee beans", "coffee beans", 1, "buy"},
		{"get 6 bagels", "bagels", 6, "buy"},
		{"purchase a bottle of olive oil", "olive oil", 1, "buy"},
		{"put cheese on my list", "cheese", 1, "put"},
		{"include 2 lemons in the list", "lemons", 2, "put"},
		{"whole milk", "whole milk", 1, "bare"},
		{"5 milk", "milk", 5, "bare"},
	}
	for _, tt := range tests {
		in := parseCommand(t, tt.input)
		assert.Equal(t, voice.Add, in.Kind, "Parse(%q)", tt.input)
		assert.Equal(t, tt.item, in.Item, "Parse(%q)", tt.input)
		assert.Equal(t, tt.qty, in.Quantity, "Parse(%q)", tt.input)
		assert.Equal(t, tt.rule, in.Rule, "Parse(%q)", tt.input)
		assert.False(t, in.Implicit, "Parse(%q)", tt.input)
	}
}

func TestCommandParser_LeadingNumberOverridesTemplateQuantity(t *testing.T) {
	in := parseCommand(t, "add 2 the 5 milk")
	assert.Equal(t, "milk", in.Item)
	assert.Equal(t, 5, in.Quantity)

	in = parseCommand(t, "add a 5 milk")
	assert.Equal(t, "milk", in.Item)
	assert.Equal(t, 5, in.Quantity)
}

func TestCommandParser_TrailingPlease(t *testing.T) {
	in := parseCommand(t, "add 2 eggs to my list please")
	assert.Equal(t, voice.Add, in.Kind)
	assert.Equal(t, "eggs", in.Item)
	assert.Equal(t, 2, in.Quantity)
}

func TestCommandParser_OneDecimalPrice(t *testing.T) {
	in := parseCommand(t, "add milk for $3.5")
	assert.Equal(t, voice.Add, in.Kind)
	assert.Equal(t, "milk", in.Item)
	require.NotNil(t, in.Price)
	assert.Equal(t, 3.5, *in.Price)
}

func TestCommandParser_SpokenPrice(t *testing.T) {
	in := parseCommand(t, "MacBook Pro for $3499")
	assert.Equal(t, voice.Add, in.Kind)
	assert.Equal(t, "macbook pro", in.Item)
	require.NotNil(t, in.Price)
	assert.Equal(t, 3499.0, *in.Price)

	in = parseCommand(t, "add milk for 5 dollars")
	assert.Equal(t, "milk", in.Item)
	require.NotNil(t, in.Price)
	assert.Equal(t, 5.0, *in.Price)
}

func TestCommandParser_Remove(t *testing.T) {
	tests := []struct {
		input string
		item  string
	}{
		{"remove bread", "bread"},
		{"remove the milk from my list", "milk"},
		{"delete eggs from the list", "eggs"},
		{"take off bananas", "bananas"},
		{"take out the trash bags", "trash bags"},
		{"please remove cheese", "cheese"},
		{"remove allergy pills", "allergy pills"},
		{"remove milk from my list please", "milk"},
		{"delete the eggs please", "eggs"},
	}
	for _, tt := range tests {
		in := parseCommand(t, tt.input)
		assert.Equal(t, voice.Remove, in.Kind, "Parse(%q)", tt.input)
		assert.Equal(t, tt.item, in.Item, "Parse(%q)", tt.input)
	}
}

func TestCommandParser_ClearAllShortCircuits(t *testing.T) {
	for _, input := range []string{
		"please clear all items now",
		"clear list",
		"empty list",
		"delete everything",
		"add milk and then remove all",
	} {
		in := parseCommand(t, input)
		assert.Equal(t, voice.ClearAll, in.Kind, "Parse(%q)", input)
	}
}

func TestCommandParser_EmptyPhraseSkipsTemplate(t *testing.T) {
	// "add the" leaves nothing after fillers, so the bare phrase rule
	// and then salvage get their turn.
	in, err := voice.NewCommandParser().Parse("add the")
	assert.ErrorIs(t, err, voice.ErrNotRecognized)
	assert.Equal(t, voice.Unrecognized, in.Kind)
}

func TestCommandParser_Salvage(t *testing.T) {
	in := parseCommand(t, "uh 42 eggs ok")
	assert.Equal(t, voice.Add, in.Kind)
	assert.Equal(t, "eggs", in.Item)
	assert.Equal(t, 1, in.Quantity)
	assert.True(t, in.Implicit)
	assert.Equal(t, "salvage", in.Rule)
}

func TestCommandParser_Unrecognized(t *testing.T) {
	for _, input := range []string{"", "   ", "$5", "to 12 my", "the"} {
		in, err := voice.NewCommandParser().Parse(input)
		assert.ErrorIs(t, err, voice.ErrNotRecognized, "Parse(%q)", input)
		assert.Equal(t, voice.Unrecognized, in.Kind, "Parse(%q)", input)
	}
}

func TestCommandParser_KeepsTranscript(t *testing.T) {
	in := parseCommand(t, "  Add Milk!  ")
	assert.Equal(t, "add milk", in.Transcript)
}

func parseSearch(t *testing.T, transcript string) voice.Intent {
	t.Helper()
	in, err := voice.NewSearchParser().Parse(transcript)
	require.NoError(t, err, "Parse(%q)", transcript)
	return in
}

func TestSearchParser_Search(t *testing.T) {
	tests := []struct {
		input string
		query string
	}{
		{"find organic milk", "organic milk"},
		{"search for iphone", "iphone"},
		{"show me the headphones", "headphones"},
		{"look for running shoes", "running shoes"},
		{"yoga mat", "yoga mat"},
	}
	for _, tt := range tests {
		in := parseSearch(t, tt.input)
		assert.Equal(t, voice.Search, in.Kind, "Parse(%q)", tt.input)
		assert.Equal(t, tt.query, in.Item, "Parse(%q)", tt.input)
	}
}

func TestSearchParser_PriceFilter(t *testing.T) {
	in := parseSearch(t, "find milk under 5 dollars")
	assert.Equal(t, voice.PriceFilter, in.Kind)
	assert.Equal(t, "milk", in.Item)
	assert.Nil(t, in.Filter.Min)
	require.NotNil(t, in.Filter.Max)
	assert.Equal(t, 5.0, *in.Filter.Max)

	in = parseSearch(t, "show me items between 20 and 10 dollars")
	assert.Equal(t, voice.PriceFilter, in.Kind)
	assert.Empty(t, in.Item)
	require.NotNil(t, in.Filter.Min)
	require.NotNil(t, in.Filter.Max)
	assert.Equal(t, 10.0, *in.Filter.Min)
	assert.Equal(t, 20.0, *in.Filter.Max)

	in = parseSearch(t, "less than $2.5")
	require.NotNil(t, in.Filter.Max)
	assert.Equal(t, 2.5, *in.Filter.Max)
}

func TestSearchParser_AddStillAdds(t *testing.T) {
	in := parseSearch(t, "add 2 apples")
	assert.Equal(t, voice.Add, in.Kind)
	assert.Equal(t, "apples", in.Item)
	assert.Equal(t, 2, in.Quantity)
	assert.Nil(t, in.Price)
}

func TestSearchParser_NoPriceExtraction(t *testing.T) {
	in := parseSearch(t, "apples for $3")
	assert.Equal(t, voice.Search, in.Kind)
	assert.Equal(t, "apples 3", in.Item)
}

func TestSearchParser_Unrecognized(t *testing.T) {
	_, err := voice.NewSearchParser().Parse("find")
	assert.ErrorIs(t, err, voice.ErrNotRecognized)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "add", voice.Add.String())
	assert.Equal(t, "clear-all", voice.ClearAll.String())
	assert.Equal(t, "price-filter", voice.PriceFilter.String())
	assert.Equal(t, "unrecognized", voice.Unrecognized.String())
}
