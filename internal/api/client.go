package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tayloree/voicecart/internal/catalog"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "voicecart/1.0"
)

// Client talks to a voicecart catalog service. It implements
// catalog.Provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ catalog.Provider = (*Client)(nil)

// NewClient creates a client for the catalog service at baseURL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithHTTPClient creates a client that sends requests through hc.
func NewClientWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		httpClient: hc,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getAndDecode(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body ErrorResponse
		if json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body) == nil && body.Error != "" {
			return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, reqURL, body.Error)
		}
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response: trailing JSON content")
	}
	return nil
}

// Search queries the catalog. A blank query returns nil without a request.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	params := url.Values{"q": {query}}
	var resp SearchResponse
	if err := c.getAndDecode(ctx, c.baseURL+ProductsPath+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	return resp.Products, nil
}

// FetchCategories lists catalog categories with product counts.
func (c *Client) FetchCategories(ctx context.Context) ([]CategoryCount, error) {
	var resp CategoriesResponse
	if err := c.getAndDecode(ctx, c.baseURL+CategoriesPath, &resp); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return resp.Categories, nil
}

// Health checks that the service is up.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getAndDecode(ctx, c.baseURL+HealthPath, &resp); err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}
	return &resp, nil
}
