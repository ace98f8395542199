// internal/tenant/resolver.go
//
// Slug → Tenant resolution.
//
// Context
// -------
// Resolution is the hard gate of every render: an unknown slug is a
// terminal not-found and nothing further executes.  Each render observes
// a fresh load (no cache, no staleness to reason about); concurrent
// lookups for the same slug are merely collapsed through singleflight so
// a traffic spike on one store does not fan out into identical GETs.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/metrics"
)

// ErrNotFound is returned when a slug is absent or matches no store.
var ErrNotFound = errors.New("tenant: store not found")

// Resolver maps store slugs to Tenant records via the read API.
type Resolver struct {
	api *catalog.Client
	sfg singleflight.Group
}

// NewResolver wires a Resolver to the catalog client.
func NewResolver(api *catalog.Client) *Resolver {
	return &Resolver{api: api}
}

// Resolve returns the Tenant for slug, or ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, slug string) (*Tenant, error) {
	slug = strings.TrimSpace(slug)
	if !validSlug(slug) {
		metrics.StoreResolveErrorsTotal.Inc()
		return nil, ErrNotFound
	}

	v, err, _ := r.sfg.Do(slug, func() (any, error) {
		var t Tenant
		if err := r.api.GetJSON(ctx, "/stores/"+slug, nil, &t); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("tenant: resolve %q: %w", slug, err)
		}
		return &t, nil
	})
	if err != nil {
		metrics.StoreResolveErrorsTotal.Inc()
		return nil, err
	}

	metrics.StoreResolveTotal.Inc()
	return v.(*Tenant), nil
}

// validSlug accepts lowercase alphanumerics and single hyphens, the same
// shape the admin surface enforces on creation.
func validSlug(s string) bool {
	if s == "" || len(s) > 120 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(s)-1 || s[i-1] == '-' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
