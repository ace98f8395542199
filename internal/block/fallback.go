// internal/block/fallback.go
//
// Fallback composer.
//
// Context
// -------
// When a store has no theme at all, or a theme whose block list is
// empty, the page still has to exist: a default hero (store name,
// description, niche badge) followed by a product grid fetched
// independently.  The composer reuses the hero and product-grid
// variants with empty configs, so the fallback is exactly the rendering
// a minimal theme would produce.
package block

import (
	"context"
	"html/template"

	"github.com/dropforge/storefront/internal/metrics"
	"github.com/dropforge/storefront/internal/tenant"
)

// Fallback assembles the default page body for a store without a usable
// theme.
func (r *Renderer) Fallback(ctx context.Context, ten *tenant.Tenant) template.HTML {
	metrics.FallbackRenderTotal.Inc()

	hero, err := r.renderHero(ten, Config{})
	if err != nil {
		hero = ""
	}
	grid, err := r.renderProductGrid(ctx, ten, Config{"title": "Our products"})
	if err != nil {
		grid = ""
	}
	return hero + grid
}
