// internal/catalog/client.go
//
// HTTP client for the tenant-scoped read API.
//
// Context
// -------
// The renderer never talks to a database.  Stores, themes, products, and
// categories all come from read-only GETs against one base URL, each
// independently fallible.  The client performs exactly one attempt per
// call: every caller has a documented fallback for an absent result, so
// retrying here would only delay that fallback.
//
// Notes
// -----
// • GetJSON is exported so domain packages (tenant, theme) can decode
//   into their own types without this package importing them back.
// • A 404 is surfaced as ErrNotFound so callers can distinguish “no such
//   resource” from transport trouble.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the read API answers 404 for a resource.
var ErrNotFound = errors.New("catalog: resource not found")

// Client issues read-only requests against the catalog API.
type Client struct {
	base string
	http *http.Client
}

// New validates the base URL and returns a ready Client.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("catalog: invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		http: &http.Client{Timeout: timeout},
	}, nil
}

// GetJSON performs one GET against base+path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("catalog: GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return nil
}

//
// Typed endpoints
//

// productList mirrors the paginated wire envelope.
type productList struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

type categoryList struct {
	Items []Category `json:"items"`
}

// Products fetches up to limit products from a store’s public catalog.
func (c *Client) Products(ctx context.Context, storeSlug string, limit int) ([]Product, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	var list productList
	if err := c.GetJSON(ctx, "/stores/"+url.PathEscape(storeSlug)+"/products", q, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// Categories fetches the flat top-level category list for a store.
func (c *Client) Categories(ctx context.Context, storeSlug string) ([]Category, error) {
	var list categoryList
	if err := c.GetJSON(ctx, "/stores/"+url.PathEscape(storeSlug)+"/categories", nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}
