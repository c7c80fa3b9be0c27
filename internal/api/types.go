package api

import "github.com/tayloree/voicecart/internal/catalog"

// SearchResponse is the body of GET /api/v1/products.
type SearchResponse struct {
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

// CategoriesResponse is the body of GET /api/v1/categories.
type CategoriesResponse struct {
	Categories []CategoryCount `json:"categories"`
}

// CategoryCount is one catalog category and how many products it holds.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Products int    `json:"products"`
}

// ErrorResponse is the body the catalog service sends with non-2xx codes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Paths served by the catalog service.
const (
	ProductsPath   = "/api/v1/products"
	CategoriesPath = "/api/v1/categories"
	HealthPath     = "/healthz"
	MetricsPath    = "/metrics"
)
