package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/filter"
	"github.com/tayloree/voicecart/internal/logger"
	"github.com/tayloree/voicecart/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Source is a catalog the server can both search and enumerate.
type Source interface {
	catalog.Provider
	Products() []catalog.Product
}

// Server exposes a catalog over HTTP.
type Server struct {
	source   Source
	provider catalog.Provider
	metrics  *metrics.Recorder
	log      logger.Log
}

// Option configures a Server.
type Option func(*Server)

// WithFallback answers queries the catalog cannot with estimated products.
func WithFallback(f *catalog.Fallback) Option {
	return func(s *Server) {
		s.provider = catalog.WithFallback{Primary: s.source, Fallback: f}
	}
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Server) { s.metrics = m }
}

func WithLogger(l logger.Log) Option {
	return func(s *Server) { s.log = l }
}

// New creates a Server over source.
func New(source Source, opts ...Option) *Server {
	s := &Server{
		source:   source,
		provider: source,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Route builds the service router.
func (s *Server) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get(api.HealthPath, s.getHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.getProducts)
		r.Get("/categories", s.getCategories)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, api.MetricsPath, s.metrics.Handler())
	}
	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Route(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("catalog service listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving catalog: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down catalog service")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Products: len(s.source.Products())})
}

// getProducts searches the catalog. Optional min, max, category, sort and
// limit parameters narrow and order the results.
func (s *Server) getProducts(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	opts, err := filterOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	products, err := s.provider.Search(r.Context(), q)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		s.metrics.Lookup(metrics.OutcomeError, elapsed)
		s.log.Error("catalog search failed", zap.String("query", q), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "catalog search failed")
		return
	}
	outcome := metrics.OutcomeHit
	if len(products) == 0 {
		outcome = metrics.OutcomeMiss
	}
	s.metrics.Lookup(outcome, elapsed)

	products = filter.Apply(products, opts)
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, api.SearchResponse{Query: q, Count: len(products), Products: products})
}

func (s *Server) getCategories(w http.ResponseWriter, _ *http.Request) {
	counts := catalog.Categories(s.source.Products())
	cats := make([]api.CategoryCount, 0, len(counts))
	for name, n := range counts {
		cats = append(cats, api.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Count != cats[j].Count {
			return cats[i].Count > cats[j].Count
		}
		return cats[i].Name < cats[j].Name
	})
	writeJSON(w, http.StatusOK, api.CategoriesResponse{Categories: cats})
}

func filterOptions(r *http.Request) (filter.Options, error) {
	q := r.URL.Query()
	opts := filter.Options{
		Category:    q.Get("category"),
		InStockOnly: q.Get("inStock") == "true",
		Sort:        q.Get("sort"),
	}

	var err error
	if opts.Price.Min, err = floatParam(q.Get("min"), "min"); err != nil {
		return opts, err
	}
	if opts.Price.Max, err = floatParam(q.Get("max"), "max"); err != nil {
		return opts, err
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid limit %q", raw)
		}
		opts.Limit = n
	}
	return opts, nil
}

func floatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg})
}
