package shopping

// Stats summarizes the list and purchase history.
type Stats struct {
	TotalItems     int     `json:"totalItems"`
	Completed      int     `json:"completed"`
	Remaining      int     `json:"remaining"`
	TotalQuantity  int     `json:"totalQuantity"`
	TopCategory    string  `json:"topCategory,omitempty"`
	TopItem        string  `json:"topItem,omitempty"`
	TopItemCount   int     `json:"topItemCount,omitempty"`
	EstimatedTotal float64 `json:"estimatedTotal"`
	PricedItems    int     `json:"pricedItems"`
}

// ComputeStats derives Stats. The top category counts list items; ties go
// to the category seen first. The top item is the most frequent history
// entry, ties going to the earlier entry.
func ComputeStats(items []Item, history []PurchaseRecord) Stats {
	var st Stats
	st.TotalItems = len(items)

	counts := make(map[string]int)
	var order []string
	for _, it := range items {
		if it.Completed {
			st.Completed++
		}
		st.TotalQuantity += it.Quantity
		if it.Price != nil {
			st.EstimatedTotal += *it.Price * float64(it.Quantity)
			st.PricedItems++
		}
		if it.Category == "" {
			continue
		}
		if counts[it.Category] == 0 {
			order = append(order, it.Category)
		}
		counts[it.Category]++
	}
	st.Remaining = st.TotalItems - st.Completed

	best := 0
	for _, c := range order {
		if counts[c] > best {
			best = counts[c]
			st.TopCategory = c
		}
	}

	for _, h := range history {
		if h.Frequency > st.TopItemCount {
			st.TopItemCount = h.Frequency
			st.TopItem = h.ItemName
		}
	}
	return st
}
