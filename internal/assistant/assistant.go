package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/filter"
	"github.com/tayloree/voicecart/internal/logger"
	"github.com/tayloree/voicecart/internal/metrics"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/suggest"
	"github.com/tayloree/voicecart/internal/voice"
)

// Mode selects which parser reads a transcript.
type Mode string

const (
	ModeCommand Mode = "command"
	ModeSearch  Mode = "search"
)

// ParseMode accepts "command" or "search".
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeCommand:
		return ModeCommand, nil
	case ModeSearch:
		return ModeSearch, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want command or search)", s)
	}
}

// Notifier receives user-facing messages. It must not block.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Outcome describes what one transcript did.
type Outcome struct {
	Intent  voice.Intent      `json:"-"`
	Kind    string            `json:"intent"`
	Item    *shopping.Item    `json:"item,omitempty"`
	Removed *shopping.Item    `json:"removed,omitempty"`
	Cleared int               `json:"cleared,omitempty"`
	Query   string            `json:"query,omitempty"`
	Results []catalog.Product `json:"results,omitempty"`
	Filter  voice.PriceRange  `json:"filter"`
	Message string            `json:"message"`
}

// Assistant turns final transcripts into list changes and searches.
// Transcripts are handled one at a time, even when a command and a search
// listener run together.
type Assistant struct {
	store    *shopping.Store
	provider catalog.Provider
	command  *voice.Parser
	search   *voice.Parser
	notify   Notifier
	log      logger.Log
	metrics  *metrics.Recorder

	mu     sync.Mutex
	filter voice.PriceRange
}

// Option configures an Assistant.
type Option func(*Assistant)

func WithNotifier(n Notifier) Option {
	return func(a *Assistant) { a.notify = n }
}

func WithLogger(l logger.Log) Option {
	return func(a *Assistant) { a.log = l }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(a *Assistant) { a.metrics = m }
}

// New creates an Assistant over store and provider.
func New(store *shopping.Store, provider catalog.Provider, opts ...Option) *Assistant {
	a := &Assistant{
		store:    store,
		provider: provider,
		command:  voice.NewCommandParser(),
		search:   voice.NewSearchParser(),
		notify:   nopNotifier{},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handle dispatches text to HandleCommand or HandleSearch.
func (a *Assistant) Handle(ctx context.Context, mode Mode, text string) (Outcome, error) {
	if mode == ModeSearch {
		return a.HandleSearch(ctx, text)
	}
	return a.HandleCommand(ctx, text)
}

// HandleCommand reads text as a list command: add, remove or clear-all.
func (a *Assistant) HandleCommand(ctx context.Context, text string) (Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	in, err := a.command.Parse(text)
	if err != nil {
		return a.notRecognized(in, err)
	}

	var out Outcome
	switch in.Kind {
	case voice.Add:
		out, err = a.add(ctx, in)
	case voice.Remove:
		out, err = a.remove(ctx, in)
	case voice.ClearAll:
		out, err = a.clearAll(ctx, in)
	default:
		return a.notRecognized(in, voice.ErrNotRecognized)
	}
	return a.finish(out, err)
}

// HandleSearch reads text as a catalog search. Explicit adds still add and
// price phrases set the session's price filter.
func (a *Assistant) HandleSearch(ctx context.Context, text string) (Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	in, err := a.search.Parse(text)
	if err != nil {
		return a.notRecognized(in, err)
	}

	var out Outcome
	switch in.Kind {
	case voice.Add:
		out, err = a.add(ctx, in)
	case voice.PriceFilter:
		out, err = a.priceFilter(ctx, in)
	case voice.Search:
		out, err = a.runSearch(ctx, in, in.Item)
	default:
		return a.notRecognized(in, voice.ErrNotRecognized)
	}
	return a.finish(out, err)
}

// Search runs query against the catalog with the session price filter.
func (a *Assistant) Search(ctx context.Context, query string) (Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	in := voice.Intent{Kind: voice.Search, Item: query, Transcript: query}
	return a.finish(a.runSearch(ctx, in, query))
}

// SetPriceFilter replaces the session price filter.
func (a *Assistant) SetPriceFilter(r voice.PriceRange) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter = r
}

// PriceFilter returns the session price filter.
func (a *Assistant) PriceFilter() voice.PriceRange {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filter
}

// AcceptSuggestion adds a suggested item with quantity 1. The catalog
// supplies price and category when it has the exact name.
func (a *Assistant) AcceptSuggestion(ctx context.Context, s suggest.Suggestion) (Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	in := voice.Intent{Kind: voice.Add, Item: s.Name, Quantity: 1, Rule: "suggestion", Transcript: s.Name}
	n := shopping.NewItem{Name: s.Name, Quantity: 1, Price: s.Price}

	products, err := a.lookup(ctx, s.Name)
	if err != nil {
		return a.finish(Outcome{Intent: in}, err)
	}
	if p, ok := catalog.FindByName(products, s.Name); ok && !p.Estimated {
		n.Name, n.Category = p.Name, p.Category
		if n.Price == nil {
			price := p.Price
			n.Price = &price
		}
	} else {
		n.Category = catalog.Categorize(s.Name)
	}

	if err := ctx.Err(); err != nil {
		return a.finish(Outcome{Intent: in}, err)
	}
	item, err := a.store.AddItem(n)
	if err != nil {
		return a.finish(Outcome{Intent: in}, err)
	}
	return a.finish(Outcome{
		Intent:  in,
		Item:    &item,
		Message: fmt.Sprintf("Added %s to your list", item.Name),
	}, nil)
}

func (a *Assistant) add(ctx context.Context, in voice.Intent) (Outcome, error) {
	out := Outcome{Intent: in, Query: in.Item}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	a.store.RecordSearch(in.Item)

	products, err := a.lookup(ctx, in.Item)
	if err != nil {
		return out, err
	}
	p, ok := catalog.Resolve(products, in.Item)
	if !ok {
		out.Message = fmt.Sprintf("%s is not available in the store.", in.Item)
		return out, &NotAvailableError{Phrase: in.Item, Hints: a.hints(in.Item)}
	}

	price := p.Price
	if in.Price != nil {
		price = *in.Price
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	item, err := a.store.AddItem(shopping.NewItem{
		Name:     p.Name,
		Quantity: in.Quantity,
		Category: p.Category,
		Price:    &price,
	})
	if err != nil {
		return out, err
	}
	out.Item = &item
	out.Message = fmt.Sprintf("Added %s for $%.2f", item.Name, price)
	return out, nil
}

func (a *Assistant) remove(ctx context.Context, in voice.Intent) (Outcome, error) {
	out := Outcome{Intent: in}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	removed, err := a.store.RemoveByName(in.Item)
	if err != nil {
		out.Message = fmt.Sprintf("Could not find %q in your list", in.Item)
		return out, err
	}
	out.Removed = &removed
	out.Message = fmt.Sprintf("Removed %s from your list", removed.Name)
	return out, nil
}

func (a *Assistant) clearAll(ctx context.Context, in voice.Intent) (Outcome, error) {
	out := Outcome{Intent: in}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	out.Cleared = a.store.ClearAll()
	out.Message = "Cleared all items from your list"
	return out, nil
}

func (a *Assistant) priceFilter(ctx context.Context, in voice.Intent) (Outcome, error) {
	a.filter = in.Filter
	msg := describeFilter(in.Filter)
	if in.Item == "" {
		return Outcome{Intent: in, Filter: a.filter, Message: msg}, nil
	}
	out, err := a.runSearch(ctx, in, in.Item)
	if err == nil {
		out.Message = msg + ". " + out.Message
	}
	return out, err
}

func (a *Assistant) runSearch(ctx context.Context, in voice.Intent, query string) (Outcome, error) {
	out := Outcome{Intent: in, Query: query, Filter: a.filter}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	a.store.RecordSearch(query)

	products, err := a.lookup(ctx, query)
	if err != nil {
		return out, err
	}
	out.Results = filter.Apply(products, filter.Options{Price: a.filter})
	if len(out.Results) == 0 {
		out.Message = "No items found matching your search"
	} else {
		out.Message = fmt.Sprintf("Found %d items", len(out.Results))
	}
	return out, nil
}

// lookup queries the provider. Provider failures count as zero results;
// only cancellation of ctx is returned as an error.
func (a *Assistant) lookup(ctx context.Context, query string) ([]catalog.Product, error) {
	start := time.Now()
	products, err := a.provider.Search(ctx, query)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		a.metrics.Lookup(metrics.OutcomeError, elapsed)
		a.log.Warn("catalog lookup failed", zap.String("query", query), zap.Error(err))
		return nil, nil
	}
	outcome := metrics.OutcomeHit
	if len(products) == 0 {
		outcome = metrics.OutcomeMiss
	}
	a.metrics.Lookup(outcome, elapsed)
	a.log.Debug("catalog lookup", zap.String("query", query), zap.Int("results", len(products)))
	return products, nil
}

type productLister interface {
	Products() []catalog.Product
}

func (a *Assistant) hints(phrase string) []string {
	pl, ok := a.provider.(productLister)
	if !ok {
		return nil
	}
	return catalog.DidYouMean(pl.Products(), phrase, 3)
}

func (a *Assistant) notRecognized(in voice.Intent, err error) (Outcome, error) {
	out := Outcome{
		Intent:  in,
		Kind:    voice.Unrecognized.String(),
		Filter:  a.filter,
		Message: `Command not recognized. Try saying just the item name like "potato" or "milk"`,
	}
	a.metrics.Command(out.Kind, "not_recognized")
	a.notify.Error(out.Message)
	return out, err
}

// finish fills the shared fields, notifies and records metrics.
func (a *Assistant) finish(out Outcome, err error) (Outcome, error) {
	out.Kind = out.Intent.Kind.String()
	if out.Filter.IsZero() {
		out.Filter = a.filter
	}

	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = "cancelled"
	case errors.Is(err, ErrItemNotAvailable):
		outcome = "not_available"
	case errors.Is(err, shopping.ErrItemNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	a.metrics.Command(out.Kind, outcome)

	switch {
	case outcome == "cancelled":
		a.log.Debug("transcript dropped after cancellation", zap.String("transcript", out.Intent.Transcript))
	case err != nil:
		if out.Message == "" {
			out.Message = err.Error()
		}
		a.notify.Error(out.Message)
	default:
		a.notify.Success(out.Message)
	}
	return out, err
}

func describeFilter(r voice.PriceRange) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("Filtering items between $%s and $%s", money(*r.Min), money(*r.Max))
	case r.Max != nil:
		return fmt.Sprintf("Filtering items under $%s", money(*r.Max))
	case r.Min != nil:
		return fmt.Sprintf("Filtering items over $%s", money(*r.Min))
	default:
		return "Showing all prices"
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
