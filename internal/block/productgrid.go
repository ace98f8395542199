// internal/block/productgrid.go
//
// Product grid.  Fetches up to `limit` products from the tenant catalog
// and lays them out in `columns` columns.  A failed fetch renders
// nothing (the sibling blocks carry the page); an empty catalog renders
// an explicit empty-state message so merchants see the grid is wired up.
package block

import (
	"context"
	"html/template"
	"time"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/metrics"
	"github.com/dropforge/storefront/internal/tenant"
)

const (
	gridDefaultLimit   = 8
	gridDefaultColumns = 4
)

var productGridTmpl = template.Must(template.New("product_grid").Parse(`<section class="block product-grid" style="--grid-columns:{{.Columns}}">
{{if .Title}}<h2 class="block-title">{{.Title}}</h2>{{end}}
{{if .Products}}<ul class="product-cards">
{{range .Products}}<li class="product-card">
<a href="/{{$.StoreSlug}}/products/{{.Slug}}">
{{if .Image}}<img class="product-card-image" src="{{.Image}}" alt="{{.Title}}" loading="lazy">{{end}}
<h3 class="product-card-title">{{.Title}}</h3>
<p class="product-card-price">{{.Price}}{{if .Discount}} <s>{{.CompareAt}}</s>{{end}}</p>
{{if .New}}<span class="badge badge-new">New</span>{{end}}
{{if .Discount}}<span class="badge badge-sale">-{{.Discount}}%</span>{{end}}
</a>
</li>{{end}}
</ul>{{else}}<p class="product-grid-empty">No products here yet. Check back soon.</p>{{end}}
</section>
`))

type productCard struct {
	Slug      string
	Title     string
	Price     string
	CompareAt string
	Image     string
	New       bool
	Discount  int
}

type productGridData struct {
	Title     string
	Columns   int
	StoreSlug string
	Products  []productCard
}

func (r *Renderer) renderProductGrid(ctx context.Context, ten *tenant.Tenant, cfg Config) (template.HTML, error) {
	limit := clampInt(cfg.Int("limit", gridDefaultLimit), 1, 24)
	columns := clampInt(cfg.Int("columns", gridDefaultColumns), 2, 6)

	products, err := r.api.Products(ctx, ten.Slug, limit)
	if err != nil {
		metrics.BlockFetchErrorsTotal.WithLabelValues(string(KindProductGrid)).Inc()
		return "", nil // skip state: siblings are unaffected
	}

	return exec(productGridTmpl, productGridData{
		Title:     cfg.Str("title", ""),
		Columns:   columns,
		StoreSlug: ten.Slug,
		Products:  toCards(products, r.now()),
	})
}

// toCards derives the presentation predicates once per product.
func toCards(products []catalog.Product, now time.Time) []productCard {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, productCard{
			Slug:      p.Slug,
			Title:     p.Title,
			Price:     p.Price,
			CompareAt: p.CompareAtPrice,
			Image:     p.FirstImage(),
			New:       p.IsNew(now),
			Discount:  p.DiscountPercent(),
		})
	}
	return cards
}
