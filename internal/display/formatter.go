package display

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/suggest"
	"github.com/tayloree/voicecart/internal/voice"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	estTag       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	reasonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// PrintItems renders the shopping list.
func PrintItems(w io.Writer, items []shopping.Item) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Shopping List"),
		cyanStyle.Render(fmt.Sprintf("%d items", len(items))),
	)
	if len(items) == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render(`Your list is empty. Try saying "add milk".`))
		return
	}
	for _, it := range items {
		printItem(w, it)
	}
	fmt.Fprintln(w)
}

// PrintItemsJSON renders list items as JSON.
func PrintItemsJSON(w io.Writer, items []shopping.Item) error {
	if items == nil {
		items = []shopping.Item{}
	}
	return json.NewEncoder(w).Encode(items)
}

// PrintSearchResults renders catalog matches for query.
func PrintSearchResults(w io.Writer, query string, products []catalog.Product) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render(fmt.Sprintf("Results for %q", query)),
		cyanStyle.Render(fmt.Sprintf("%d items", len(products))),
	)
	for _, p := range products {
		printProduct(w, p)
	}
	fmt.Fprintln(w)
}

// PrintSearchResultsJSON renders catalog matches in the catalog service's
// response shape.
func PrintSearchResultsJSON(w io.Writer, query string, products []catalog.Product) error {
	if products == nil {
		products = []catalog.Product{}
	}
	return json.NewEncoder(w).Encode(api.SearchResponse{Query: query, Count: len(products), Products: products})
}

// PrintSuggestions renders suggestions with their reasons.
func PrintSuggestions(w io.Writer, suggestions []suggest.Suggestion) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Smart suggestions"))
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("Add a few items to get suggestions."))
		return
	}
	for i, s := range suggestions {
		line := fmt.Sprintf("  %s %s", cyanStyle.Render(fmt.Sprintf("%d.", i+1)), titleStyle.Render(s.Name))
		if s.Price != nil {
			line += "  " + priceStyle.Render(fmt.Sprintf("$%.2f", *s.Price))
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "     %s %s\n",
			dimStyle.Render("["+string(s.Kind)+"]"),
			reasonStyle.Render(wordWrap(s.Reason, 64, "     ")),
		)
	}
	fmt.Fprintln(w)
}

// PrintSuggestionsJSON renders suggestions as JSON.
func PrintSuggestionsJSON(w io.Writer, suggestions []suggest.Suggestion) error {
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}
	return json.NewEncoder(w).Encode(suggestions)
}

// PrintStats renders list statistics.
func PrintStats(w io.Writer, st shopping.Stats) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("List statistics"))
	row := func(label, value string) {
		fmt.Fprintf(w, "  %-16s %s\n", dimStyle.Render(label), value)
	}
	row("Items", fmt.Sprintf("%d (%d done, %d to go)", st.TotalItems, st.Completed, st.Remaining))
	row("Total quantity", fmt.Sprintf("%d", st.TotalQuantity))
	if st.TopCategory != "" {
		row("Top category", cyanStyle.Render(st.TopCategory))
	}
	if st.TopItem != "" {
		row("Most added", fmt.Sprintf("%s (%d×)", st.TopItem, st.TopItemCount))
	}
	if st.PricedItems > 0 {
		row("Estimated total", priceStyle.Render(fmt.Sprintf("$%.2f", st.EstimatedTotal)))
	}
	fmt.Fprintln(w)
}

// PrintStatsJSON renders statistics as JSON.
func PrintStatsJSON(w io.Writer, st shopping.Stats) error {
	return json.NewEncoder(w).Encode(st)
}

// PrintHistory renders the purchase history, most frequent first, and the
// search log.
func PrintHistory(w io.Writer, history []shopping.PurchaseRecord, searches []shopping.SearchEntry) {
	sorted := append([]shopping.PurchaseRecord(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frequency > sorted[j].Frequency })

	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Purchase history"))
	if len(sorted) == 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("Nothing added yet."))
	}
	for _, h := range sorted {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			cyanStyle.Render(fmt.Sprintf("%3d×", h.Frequency)),
			titleStyle.Render(h.ItemName),
			dimStyle.Render(fmt.Sprintf("%s | last %s", h.Category, h.LastPurchased.Local().Format("Jan 2 15:04"))),
		)
	}

	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Recent searches"))
	if len(searches) == 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("No searches yet."))
	}
	for _, s := range searches {
		fmt.Fprintf(w, "  %s  %s\n", s.Query, dimStyle.Render(s.Timestamp.Local().Format("Jan 2 15:04")))
	}
	fmt.Fprintln(w)
}

// HistoryJSON is the JSON output shape for the history command.
type HistoryJSON struct {
	History  []shopping.PurchaseRecord `json:"history"`
	Searches []shopping.SearchEntry    `json:"searches"`
}

// PrintHistoryJSON renders history and searches as JSON.
func PrintHistoryJSON(w io.Writer, history []shopping.PurchaseRecord, searches []shopping.SearchEntry) error {
	out := HistoryJSON{History: history, Searches: searches}
	if out.History == nil {
		out.History = []shopping.PurchaseRecord{}
	}
	if out.Searches == nil {
		out.Searches = []shopping.SearchEntry{}
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintCategories renders catalog categories and their product counts.
func PrintCategories(w io.Writer, cats map[string]int) {
	type catCount struct {
		Name  string
		Count int
	}
	sorted := make([]catCount, 0, len(cats))
	for k, v := range cats {
		sorted = append(sorted, catCount{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Catalog categories:"))
	for _, c := range sorted {
		fmt.Fprintf(w, "  %s: %d products\n", cyanStyle.Render(c.Name), c.Count)
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders categories as JSON.
func PrintCategoriesJSON(w io.Writer, cats map[string]int) error {
	return json.NewEncoder(w).Encode(cats)
}

// PrintOutcome renders the result of one transcript: its message, and the
// item, removal or search results it produced.
func PrintOutcome(w io.Writer, out assistant.Outcome) {
	switch out.Kind {
	case voice.Search.String(), voice.PriceFilter.String():
		if out.Query != "" {
			PrintSearchResults(w, out.Query, out.Results)
		}
		PrintSuccess(w, out.Message)
	default:
		PrintSuccess(w, out.Message)
		if out.Item != nil {
			printItem(w, *out.Item)
		}
	}
}

// PrintOutcomeJSON renders an outcome as JSON.
func PrintOutcomeJSON(w io.Writer, out assistant.Outcome) error {
	return json.NewEncoder(w).Encode(out)
}

// PrintSuccess prints a styled confirmation.
func PrintSuccess(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(w, priceStyle.Render(msg))
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

// ShortID trims an item id for display. Commands accept any unique prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printItem(w io.Writer, it shopping.Item) {
	box, name := "[ ]", titleStyle.Render(it.Name)
	if it.Completed {
		box, name = "[x]", doneStyle.Render(it.Name)
	}

	parts := []string{fmt.Sprintf("×%d", it.Quantity)}
	if it.Price != nil {
		parts = append(parts, priceStyle.Render(fmt.Sprintf("$%.2f", *it.Price)))
	}
	if it.Category != "" {
		parts = append(parts, dimStyle.Render(it.Category))
	}
	fmt.Fprintf(w, "  %s %s %s  %s\n", cyanStyle.Render(ShortID(it.ID)), box, name, strings.Join(parts, "  "))
}

func printProduct(w io.Writer, p catalog.Product) {
	tag := ""
	if p.Estimated {
		tag = estTag.Render("EST") + " "
	}
	fmt.Fprintf(w, "  %s%s\n", tag, titleStyle.Render(p.Name))

	stock := "in stock"
	if !p.InStock {
		stock = "out of stock"
	}
	fmt.Fprintf(w, "    %s  %s\n",
		priceStyle.Render(fmt.Sprintf("$%.2f", p.Price)),
		dimStyle.Render(strings.Join(nonEmpty(p.Brand, p.Size, p.Category, stock), " | ")),
	)
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
