package shopping

import "time"

// Item is one entry on the shopping list.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Category  string    `json:"category"`
	AddedAt   time.Time `json:"addedAt"`
	Completed bool      `json:"completed"`
	Price     *float64  `json:"price,omitempty"`
}

// PurchaseRecord counts how often a name has been added, keyed without case.
type PurchaseRecord struct {
	ItemName      string    `json:"itemName"`
	Frequency     int       `json:"frequency"`
	LastPurchased time.Time `json:"lastPurchased"`
	Category      string    `json:"category"`
}

// SearchEntry is one query in the search log.
type SearchEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is a consistent copy of every collection the store owns.
type Snapshot struct {
	Items    []Item           `json:"items"`
	History  []PurchaseRecord `json:"history"`
	Searches []SearchEntry    `json:"searches"`
}

// NewItem describes an item to add.
type NewItem struct {
	Name     string
	Quantity int
	Category string
	Price    *float64
}
