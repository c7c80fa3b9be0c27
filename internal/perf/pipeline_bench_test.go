package perf_test

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/server"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/voice"
)

func benchmarkProducts(count int) []catalog.Product {
	products := make([]catalog.Product, 0, count+len(catalog.Builtin()))
	products = append(products, catalog.Builtin()...)
	for i := range count {
		category := "grocery"
		if i%4 == 0 {
			category = "electronics"
		}
		if i%7 == 0 {
			category = "home"
		}
		products = append(products, catalog.Product{
			Name:     fmt.Sprintf("Fresh item %d", i),
			Category: category,
			Brand:    "Bench Farms",
			Size:     "1 lb",
			Price:    float64(i%9) + 0.99,
			InStock:  i%10 != 0,
		})
	}
	return products
}

func setupPipelineServer(b *testing.B, productCount int) *api.Client {
	b.Helper()

	srv := server.New(catalog.NewMemory(benchmarkProducts(productCount), 0))
	ts := httptest.NewServer(srv.Route())
	b.Cleanup(ts.Close)

	return api.NewClient(ts.URL)
}

var transcripts = []string{
	"add 2 whole milk",
	"3 whole wheat bread to my list",
	"add organic bananas to my list",
	"remove milk",
}

func runPipeline(b *testing.B, a *assistant.Assistant) {
	b.Helper()

	ctx := context.Background()
	for _, text := range transcripts {
		out, err := a.HandleCommand(ctx, text)
		if err != nil {
			b.Fatalf("handle %q: %v", text, err)
		}
		if err := display.PrintOutcomeJSON(io.Discard, out); err != nil {
			b.Fatalf("print outcome json: %v", err)
		}
	}

	out, err := a.HandleSearch(ctx, "find fresh item under 5 dollars")
	if err != nil {
		b.Fatalf("search: %v", err)
	}
	if len(out.Results) == 0 {
		b.Fatalf("search returned no products")
	}
}

func BenchmarkVoicePipeline_1kProducts(b *testing.B) {
	client := setupPipelineServer(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		runPipeline(b, assistant.New(shopping.NewStore(), client))
	}
}

func BenchmarkCommandParser(b *testing.B) {
	p := voice.NewCommandParser()

	b.ReportAllocs()
	for range b.N {
		for _, text := range transcripts {
			if _, err := p.Parse(text); err != nil {
				b.Fatalf("parse %q: %v", text, err)
			}
		}
	}
}
