package shopping

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/logger"
)

// DefaultSearchLimit bounds the search log.
const DefaultSearchLimit = 20

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyName       = errors.New("item name is empty")
)

// Persister receives every collection in full after it changes.
type Persister interface {
	SaveItems(items []Item) error
	SaveHistory(history []PurchaseRecord) error
	SaveSearches(searches []SearchEntry) error
}

// Store owns the list, the purchase history and the search log. Each
// mutation builds a new slice and swaps it in, so a reader holding a
// previous slice never sees it change.
type Store struct {
	mu       sync.RWMutex
	saveMu   sync.Mutex
	items    []Item
	history  []PurchaseRecord
	searches []SearchEntry

	now         func() time.Time
	newID       func() string
	searchLimit int
	persist     Persister
	log         logger.Log
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid item id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithSearchLimit changes how many queries the search log keeps.
func WithSearchLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.searchLimit = n
		}
	}
}

// WithPersister saves collections after each mutation.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persist = p }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l logger.Log) Option {
	return func(s *Store) { s.log = l }
}

// WithSnapshot seeds the store, typically from storage at startup.
func WithSnapshot(snap Snapshot) Option {
	return func(s *Store) {
		s.items = append([]Item(nil), snap.Items...)
		s.history = append([]PurchaseRecord(nil), snap.History...)
		s.searches = append([]SearchEntry(nil), snap.Searches...)
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		newID:       uuid.NewString,
		searchLimit: DefaultSearchLimit,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.searches) > s.searchLimit {
		s.searches = s.searches[:s.searchLimit]
	}
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// AddItem appends a new list item and bumps the purchase history for its
// name.
func (s *Store) AddItem(n NewItem) (Item, error) {
	name := strings.TrimSpace(n.Name)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	if n.Quantity < 1 {
		n.Quantity = 1
	}
	if n.Price != nil && *n.Price < 0 {
		return Item{}, fmt.Errorf("price %.2f: must not be negative", *n.Price)
	}

	s.mu.Lock()
	now := s.timestamp()
	item := Item{
		ID:       s.newID(),
		Name:     name,
		Quantity: n.Quantity,
		Category: n.Category,
		AddedAt:  now,
		Price:    copyPrice(n.Price),
	}
	items := make([]Item, 0, len(s.items)+1)
	items = append(items, s.items...)
	s.items = append(items, item)
	s.history = bumpHistory(s.history, name, n.Category, now)
	itemsOut, historyOut := s.items, s.history
	s.unlockAndSave(func() {
		s.saveItems(itemsOut)
		s.saveHistory(historyOut)
	})
	return item, nil
}

func bumpHistory(history []PurchaseRecord, name, category string, now time.Time) []PurchaseRecord {
	out := make([]PurchaseRecord, len(history), len(history)+1)
	copy(out, history)
	for i := range out {
		if strings.EqualFold(out[i].ItemName, name) {
			out[i].Frequency++
			out[i].LastPurchased = now
			return out
		}
	}
	return append(out, PurchaseRecord{
		ItemName:      name,
		Frequency:     1,
		LastPurchased: now,
		Category:      category,
	})
}

// RemoveItem deletes the item with id.
func (s *Store) RemoveItem(id string) (Item, error) {
	return s.removeWhere(func(it Item) bool { return it.ID == id })
}

// RemoveByName deletes the first item, in list order, whose name contains
// phrase ignoring case.
func (s *Store) RemoveByName(phrase string) (Item, error) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return Item{}, ErrItemNotFound
	}
	return s.removeWhere(func(it Item) bool {
		return strings.Contains(strings.ToLower(it.Name), p)
	})
}

func (s *Store) removeWhere(match func(Item) bool) (Item, error) {
	s.mu.Lock()
	idx := -1
	for i, it := range s.items {
		if match(it) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return Item{}, ErrItemNotFound
	}
	removed := s.items[idx]
	items := make([]Item, 0, len(s.items)-1)
	items = append(items, s.items[:idx]...)
	s.items = append(items, s.items[idx+1:]...)
	out := s.items
	s.unlockAndSave(func() { s.saveItems(out) })
	return removed, nil
}

// UpdateQuantity sets an item's quantity. Quantities below 1 are rejected.
func (s *Store) UpdateQuantity(id string, qty int) (Item, error) {
	if qty < 1 {
		return Item{}, ErrInvalidQuantity
	}
	return s.update(id, func(it *Item) { it.Quantity = qty })
}

// ToggleComplete flips an item's completed flag.
func (s *Store) ToggleComplete(id string) (Item, error) {
	return s.update(id, func(it *Item) { it.Completed = !it.Completed })
}

func (s *Store) update(id string, fn func(*Item)) (Item, error) {
	s.mu.Lock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		fn(&items[i])
		s.items = items
		updated := items[i]
		s.unlockAndSave(func() { s.saveItems(items) })
		return updated, nil
	}
	s.mu.Unlock()
	return Item{}, ErrItemNotFound
}

// ClearCompleted drops completed items and returns how many were removed.
func (s *Store) ClearCompleted() int {
	s.mu.Lock()
	var items []Item
	for _, it := range s.items {
		if !it.Completed {
			items = append(items, it)
		}
	}
	removed := len(s.items) - len(items)
	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	s.items = items
	s.unlockAndSave(func() { s.saveItems(items) })
	return removed
}

// ClearAll empties the list. History and the search log are kept.
func (s *Store) ClearAll() int {
	s.mu.Lock()
	removed := len(s.items)
	s.items = []Item{}
	s.unlockAndSave(func() { s.saveItems([]Item{}) })
	return removed
}

// RecordSearch puts query at the front of the search log, evicting the
// oldest entries beyond the limit.
func (s *Store) RecordSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	n := len(s.searches) + 1
	if n > s.searchLimit {
		n = s.searchLimit
	}
	searches := make([]SearchEntry, 0, n)
	searches = append(searches, SearchEntry{Query: query, Timestamp: s.timestamp()})
	searches = append(searches, s.searches[:n-1]...)
	s.searches = searches
	s.unlockAndSave(func() { s.saveSearches(searches) })
}

// Items returns a copy of the list.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Price = copyPrice(it.Price)
		out[i] = it
	}
	return out
}

// History returns a copy of the purchase history.
func (s *Store) History() []PurchaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PurchaseRecord(nil), s.history...)
}

// Searches returns a copy of the search log, newest first.
func (s *Store) Searches() []SearchEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SearchEntry(nil), s.searches...)
}

// Snapshot returns all collections read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Price = copyPrice(it.Price)
		items[i] = it
	}
	return Snapshot{
		Items:    items,
		History:  append([]PurchaseRecord(nil), s.history...),
		Searches: append([]SearchEntry(nil), s.searches...),
	}
}

// Stats summarizes the current state.
func (s *Store) Stats() Stats {
	snap := s.Snapshot()
	return ComputeStats(snap.Items, snap.History)
}

// unlockAndSave releases mu, which the caller holds for writing, and runs
// save. saveMu is taken first, so snapshots reach the persister in the order
// the mutations happened.
func (s *Store) unlockAndSave(save func()) {
	s.saveMu.Lock()
	s.mu.Unlock()
	defer s.saveMu.Unlock()
	save()
}

func (s *Store) saveItems(items []Item) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveItems(items); err != nil {
		s.log.Warn("saving items", zap.Error(err))
	}
}

func (s *Store) saveHistory(history []PurchaseRecord) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveHistory(history); err != nil {
		s.log.Warn("saving purchase history", zap.Error(err))
	}
}

func (s *Store) saveSearches(searches []SearchEntry) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveSearches(searches); err != nil {
		s.log.Warn("saving search history", zap.Error(err))
	}
}

func copyPrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
