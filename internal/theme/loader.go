// internal/theme/loader.go
//
// Active-theme loading.
//
// Context
// -------
// Theme absence is a first-class state, not an error: a store that has
// never configured a theme still gets a working page through the
// fallback composer.  Load therefore performs exactly one fetch and maps
// every failure (404, transport trouble, malformed body) to a nil Theme.
// Nothing here retries; the fallback is cheaper than a second round trip.
package theme

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/metrics"
)

// Load fetches the active theme for a store.  A nil result means “no
// usable theme” and is not an error.
func Load(ctx context.Context, api *catalog.Client, storeSlug string) *Theme {
	var t Theme
	if err := api.GetJSON(ctx, "/stores/"+storeSlug+"/theme", nil, &t); err != nil {
		// Soft state: log at debug, render the fallback.
		zap.S().Debugw("no active theme", "slug", storeSlug, "err", err)
		return nil
	}

	// The sequence already encodes order; position is authoritative when
	// blocks are resorted, so a stable sort keeps ties in wire order.
	sort.SliceStable(t.Blocks, func(i, j int) bool {
		return t.Blocks[i].Position < t.Blocks[j].Position
	})

	metrics.ThemeLoadTotal.Inc()
	return &t
}
