package server_test

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/metrics"
	"github.com/tayloree/voicecart/internal/server"
)

func newTestServer(t *testing.T, opts ...server.Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.New(catalog.NewBuiltin(0), opts...).Route())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestProducts(t *testing.T) {
	srv := newTestServer(t)

	var body api.SearchResponse
	status := getJSON(t, srv.URL+"/api/v1/products?q=iphone+case", &body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "iphone case", body.Query)
	require.NotEmpty(t, body.Products)
	assert.Equal(t, "iPhone Case", body.Products[0].Name)
	assert.Equal(t, len(body.Products), body.Count)
}

func TestProducts_Filters(t *testing.T) {
	srv := newTestServer(t)

	var body api.SearchResponse
	status := getJSON(t, srv.URL+"/api/v1/products?q=organic&max=5&sort=price", &body)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Products, 2)
	assert.Equal(t, "Organic Bananas", body.Products[0].Name)
	assert.Equal(t, "Organic Strawberries", body.Products[1].Name)
}

func TestProducts_NoMatchIsEmptyList(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/products?q=unicorn")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"unicorn","count":0,"products":[]}`, string(raw))
}

func TestProducts_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/v1/products",
		"/api/v1/products?q=milk&max=cheap",
		"/api/v1/products?q=milk&limit=-1",
	} {
		var body api.ErrorResponse
		status := getJSON(t, srv.URL+path, &body)
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.NotEmpty(t, body.Error, path)
	}
}

func TestProducts_Fallback(t *testing.T) {
	srv := newTestServer(t, server.WithFallback(catalog.NewFallback(rand.New(rand.NewSource(1)))))

	var body api.SearchResponse
	status := getJSON(t, srv.URL+"/api/v1/products?q=potatoes", &body)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Products, 3)
	for _, p := range body.Products {
		assert.True(t, p.Estimated, p.Name)
	}
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t)

	var body api.CategoriesResponse
	status := getJSON(t, srv.URL+"/api/v1/categories", &body)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body.Categories)
	assert.Equal(t, "electronics", body.Categories[0].Name)

	total := 0
	for _, c := range body.Categories {
		total += c.Count
	}
	assert.Equal(t, len(catalog.Builtin()), total)
}

func TestHealthAndClient(t *testing.T) {
	srv := newTestServer(t)
	client := api.NewClient(srv.URL)

	h, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, len(catalog.Builtin()), h.Products)

	products, err := client.Search(context.Background(), "whole milk")
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "Whole Milk", products[0].Name)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := metrics.New(false)
	srv := newTestServer(t, server.WithMetrics(rec))

	var body api.SearchResponse
	getJSON(t, srv.URL+"/api/v1/products?q=milk", &body)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `voicecart_catalog_lookups_total{outcome="hit"} 1`)
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.New(catalog.NewBuiltin(0)).Serve(ctx, "127.0.0.1:0")
	}()
	cancel()
	assert.NoError(t, <-errCh)
}
