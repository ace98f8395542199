// internal/block/renderer.go
//
// Block dispatcher.
//
// Context
// -------
// Given the ordered block list of a theme, render each block with the
// variant its type tag selects and join the results in input order.
// Blocks that fetch catalog data are independent of one another, so each
// block renders in its own goroutine; a slow or failed fetch in one
// never blocks or fails its siblings.  Unknown type tags render nothing
// at all; a theme written by a newer admin surface produces a page that
// simply misses the new block.
//
// Error policy per block (never per page):
//   - fetch failed        → the variant’s documented skip state,
//   - config malformed    → the variant’s documented defaults,
//   - render failed       → an HTML comment placeholder.
package block

import (
	"context"
	"html/template"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/metrics"
	"github.com/dropforge/storefront/internal/tenant"
)

// Renderer dispatches blocks to their variant implementations.  One
// Renderer serves many concurrent page views; all state is per-call.
type Renderer struct {
	api *catalog.Client
	now func() time.Time // injectable clock for countdown tests
}

// New returns a Renderer backed by the given catalog client.
func New(api *catalog.Client) *Renderer {
	return &Renderer{api: api, now: time.Now}
}

// RenderAll renders every block concurrently and joins the fragments in
// input order.
func (r *Renderer) RenderAll(ctx context.Context, ten *tenant.Tenant, blocks []Block) template.HTML {
	if len(blocks) == 0 {
		return ""
	}

	fragments := make([]template.HTML, len(blocks))
	var wg sync.WaitGroup
	for i, b := range blocks {
		wg.Add(1)
		go func(i int, b Block) {
			defer wg.Done()
			fragments[i] = r.renderOne(ctx, ten, b)
		}(i, b)
	}
	wg.Wait()

	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(string(f))
	}
	return template.HTML(sb.String())
}

// renderOne dispatches a single block.  It never returns an error: every
// failure degrades to the variant’s skip state or a comment placeholder.
func (r *Renderer) renderOne(ctx context.Context, ten *tenant.Tenant, b Block) template.HTML {
	kind := b.Kind()
	if kind == KindUnknown {
		metrics.BlockSkippedTotal.Inc()
		zap.S().Debugw("skipping unknown block type", "type", b.Type, "store", ten.Slug)
		return ""
	}

	var (
		html template.HTML
		err  error
	)
	switch kind {
	case KindHero:
		html, err = r.renderHero(ten, b.Config)
	case KindProductGrid:
		html, err = r.renderProductGrid(ctx, ten, b.Config)
	case KindCategoriesGrid:
		html, err = r.renderCategoriesGrid(ctx, ten, b.Config)
	case KindCountdownTimer:
		html, err = r.renderCountdown(b.Config)
	case KindProductCarousel:
		html, err = r.renderCarousel(ctx, ten, b.Config)
	case KindVideoBanner:
		html, err = r.renderVideoBanner(b.Config)
	case KindCustomText:
		html, err = r.renderCustomText(b.Config)
	}
	if err != nil {
		zap.S().Warnw("block render failed", "type", b.Type, "store", ten.Slug, "err", err)
		return template.HTML("<!-- block " + template.HTMLEscapeString(b.Type) + " unavailable -->")
	}

	metrics.BlockRenderTotal.WithLabelValues(string(kind)).Inc()
	return html
}

// exec runs a parsed template into a fragment.
func exec(t *template.Template, data any) (template.HTML, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}
