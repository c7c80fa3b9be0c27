package catalog

import (
	"context"
	"time"
)

// Memory serves searches from an in-process product slice. Latency, when set,
// delays every answer to mimic a remote catalog.
type Memory struct {
	products []Product
	latency  time.Duration
}

// NewMemory creates a provider over products.
func NewMemory(products []Product, latency time.Duration) *Memory {
	return &Memory{products: products, latency: latency}
}

// NewBuiltin creates a provider over the bundled catalog.
func NewBuiltin(latency time.Duration) *Memory {
	return NewMemory(Builtin(), latency)
}

// Search implements Provider.
func (m *Memory) Search(ctx context.Context, query string) ([]Product, error) {
	if len(queryWords(query)) == 0 {
		return nil, nil
	}
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Search(m.products, query), nil
}

// Products returns a copy of the provider's products.
func (m *Memory) Products() []Product {
	out := make([]Product, len(m.products))
	copy(out, m.products)
	return out
}
