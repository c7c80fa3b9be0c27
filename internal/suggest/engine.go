package suggest

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/logger"
	"github.com/tayloree/voicecart/internal/shopping"
)

// Kind tags where a suggestion came from.
type Kind string

const (
	Frequent      Kind = "frequent"
	Seasonal      Kind = "seasonal"
	Substitute    Kind = "substitute"
	Complementary Kind = "complementary"
	Personalized  Kind = "personalized"
)

// DefaultLimit caps the suggestion list.
const DefaultLimit = 6

// Suggestion is one recommended item.
type Suggestion struct {
	Name   string   `json:"name"`
	Reason string   `json:"reason"`
	Kind   Kind     `json:"kind"`
	Price  *float64 `json:"price,omitempty"`
}

// Engine derives suggestions from the list, purchase history and search
// log. It keeps no state between calls apart from its random source.
type Engine struct {
	provider catalog.Provider
	now      func() time.Time
	limit    int
	log      logger.Log

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

func WithLogger(l logger.Log) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine. provider may be nil, which disables the
// catalog-backed suggestions.
func NewEngine(provider catalog.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		now:      time.Now,
		limit:    DefaultLimit,
		log:      logger.Nop(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Suggest returns at most the configured number of suggestions, unique by
// name ignoring case. Earlier sources win a duplicate: frequent, seasonal,
// substitute, complementary, personalized, then the catalog lookups.
func (e *Engine) Suggest(ctx context.Context, items []shopping.Item, history []shopping.PurchaseRecord, searches []shopping.SearchEntry) []Suggestion {
	listed := make(map[string]bool, len(items))
	for _, it := range items {
		listed[strings.ToLower(it.Name)] = true
	}
	head := items
	if len(head) > 3 {
		head = head[:3]
	}

	var all []Suggestion
	all = append(all, frequent(history, listed)...)
	all = append(all, seasonal(int(e.now().Month())-1, listed)...)
	all = append(all, fromTable(head, substitutes, listed, Substitute, "Alternative to %s")...)
	all = append(all, fromTable(head, complements, listed, Complementary, "Goes well with %s")...)
	all = append(all, e.personalized(searches, listed)...)
	all = append(all, e.fromSearches(ctx, searches, listed)...)
	all = append(all, e.accessories(ctx, head, listed)...)

	return dedupe(all, e.limit)
}

func frequent(history []shopping.PurchaseRecord, listed map[string]bool) []Suggestion {
	sorted := append([]shopping.PurchaseRecord(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequency > sorted[j].Frequency
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	var out []Suggestion
	for _, h := range sorted {
		if listed[strings.ToLower(h.ItemName)] {
			continue
		}
		out = append(out, Suggestion{
			Name:   h.ItemName,
			Reason: fmt.Sprintf("You buy this often (%d times)", h.Frequency),
			Kind:   Frequent,
		})
	}
	return out
}

// seasonal takes a zero-based month.
func seasonal(month int, listed map[string]bool) []Suggestion {
	var out []Suggestion
	for _, name := range seasonalItems[season(month)] {
		if listed[strings.ToLower(name)] {
			continue
		}
		out = append(out, Suggestion{Name: name, Reason: "In season now", Kind: Seasonal})
		if len(out) == 2 {
			break
		}
	}
	return out
}

// fromTable applies a keyword table to each item. Only the first key
// contained in the name counts; its value is dropped if already listed.
func fromTable(items []shopping.Item, table []pair, listed map[string]bool, kind Kind, reason string) []Suggestion {
	var out []Suggestion
	for _, it := range items {
		value, ok := lookupPair(table, strings.ToLower(it.Name))
		if !ok || listed[strings.ToLower(value)] {
			continue
		}
		out = append(out, Suggestion{Name: value, Reason: fmt.Sprintf(reason, it.Name), Kind: kind})
	}
	return out
}

func lookupPair(table []pair, name string) (string, bool) {
	for _, p := range table {
		if strings.Contains(name, p.key) {
			return p.value, true
		}
	}
	return "", false
}

var reKeywordSplit = regexp.MustCompile(`[\s,.;!?]+`)

func (e *Engine) personalized(searches []shopping.SearchEntry, listed map[string]bool) []Suggestion {
	if len(searches) == 0 {
		return nil
	}
	queries := make([]string, len(searches))
	for i, s := range searches {
		queries[i] = s.Query
	}
	var keywords []string
	for _, w := range reKeywordSplit.Split(strings.ToLower(strings.Join(queries, " ")), -1) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}

	var out []Suggestion
	for _, c := range interestCategories {
		if !anyKeyword(keywords, func(k string) bool {
			return strings.Contains(k, c.name) || strings.Contains(c.name, k)
		}) {
			continue
		}
		if pick, ok := e.pick(c.items, listed); ok {
			out = append(out, Suggestion{
				Name:   pick,
				Reason: fmt.Sprintf("Based on your interest in %ss", c.name),
				Kind:   Personalized,
			})
		}
	}

	var pref string
	for _, k := range keywords {
		if containsString(preferenceWords, k) {
			pref = k
			break
		}
	}
	if pref != "" {
		if pick, ok := e.pick(preferenceItems, listed); ok {
			out = append(out, Suggestion{
				Name:   pick,
				Reason: "Matches your preference for " + pref,
				Kind:   Personalized,
			})
		}
	}

	if len(out) > 2 {
		out = out[:2]
	}
	return out
}

func (e *Engine) pick(candidates []string, listed map[string]bool) (string, bool) {
	var avail []string
	for _, c := range candidates {
		if !listed[strings.ToLower(c)] {
			avail = append(avail, c)
		}
	}
	if len(avail) == 0 {
		return "", false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return avail[e.rng.Intn(len(avail))], true
}

// fromSearches looks up the three most recent distinct queries, keeping at
// most two in-stock products overall.
func (e *Engine) fromSearches(ctx context.Context, searches []shopping.SearchEntry, listed map[string]bool) []Suggestion {
	if e.provider == nil {
		return nil
	}
	var recent []string
	seen := make(map[string]bool)
	for _, s := range searches {
		q := strings.ToLower(s.Query)
		if seen[q] {
			continue
		}
		seen[q] = true
		recent = append(recent, s.Query)
		if len(recent) == 3 {
			break
		}
	}

	var out []Suggestion
	for _, q := range recent {
		perQuery := 0
		for _, p := range e.lookup(ctx, q) {
			if !available(p, listed) {
				continue
			}
			price := p.Price
			out = append(out, Suggestion{
				Name:   p.Name,
				Reason: fmt.Sprintf("Found in store - $%.2f", p.Price),
				Kind:   Personalized,
				Price:  &price,
			})
			perQuery++
			if perQuery == 2 || len(out) == 2 {
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return out
}

// accessories looks up catalog complements for the first matching accessory
// group of each item, keeping at most two.
func (e *Engine) accessories(ctx context.Context, items []shopping.Item, listed map[string]bool) []Suggestion {
	if e.provider == nil {
		return nil
	}
	var out []Suggestion
	for _, it := range items {
		name := strings.ToLower(it.Name)
		for _, group := range accessories {
			if !strings.Contains(name, group.key) {
				continue
			}
			for _, acc := range group.items {
				for _, p := range e.lookup(ctx, acc) {
					if !available(p, listed) {
						continue
					}
					price := p.Price
					out = append(out, Suggestion{
						Name:   p.Name,
						Reason: "Complements your " + it.Name,
						Kind:   Complementary,
						Price:  &price,
					})
					break
				}
				if len(out) == 2 {
					return out
				}
			}
			break
		}
	}
	return out
}

func (e *Engine) lookup(ctx context.Context, query string) []catalog.Product {
	products, err := e.provider.Search(ctx, query)
	if err != nil {
		e.log.Warn("catalog lookup for suggestions", zap.String("query", query), zap.Error(err))
		return nil
	}
	return products
}

func available(p catalog.Product, listed map[string]bool) bool {
	return p.InStock && !p.Estimated && !listed[strings.ToLower(p.Name)]
}

func dedupe(all []Suggestion, limit int) []Suggestion {
	seen := make(map[string]bool, len(all))
	out := make([]Suggestion, 0, limit)
	for _, s := range all {
		key := strings.ToLower(s.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func anyKeyword(keywords []string, fn func(string) bool) bool {
	for _, k := range keywords {
		if fn(k) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
