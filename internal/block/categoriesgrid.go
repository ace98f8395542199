// internal/block/categoriesgrid.go
//
// Categories grid.  Fetches the flat top-level category list and lays it
// out in a clamped column count.  Three presentation states exist and
// must stay distinguishable:
//
//   - loading  – skeleton placeholders, used when the block is marked
//     `lazy` and the client hydrates it after first paint,
//   - empty    – an explicit “no categories” message, never a blank void,
//   - ready    – the populated grid.
//
// Cards without an image get a deterministic letter badge: the first
// rune of the category name, uppercased.
package block

import (
	"context"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/metrics"
	"github.com/dropforge/storefront/internal/tenant"
)

const (
	categoriesDefaultColumns = 3
	categoriesMinColumns     = 2
	categoriesMaxColumns     = 6
	skeletonCardCount        = 6
)

var categoriesGridTmpl = template.Must(template.New("categories_grid").Parse(`<section class="block categories-grid" style="--grid-columns:{{.Columns}}"{{if .LazySrc}} data-lazy-src="{{.LazySrc}}"{{end}}>
{{if .Title}}<h2 class="block-title">{{.Title}}</h2>{{end}}
{{if .Loading}}<ul class="category-cards category-cards--skeleton">
{{range .Skeletons}}<li class="category-card category-card--skeleton" aria-hidden="true"></li>{{end}}
</ul>{{else if .Categories}}<ul class="category-cards">
{{range .Categories}}<li class="category-card">
<a href="/{{$.StoreSlug}}/categories/{{.Slug}}">
{{if .ImageURL}}<img class="category-card-image" src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy">{{else}}<span class="category-card-letter">{{.Letter}}</span>{{end}}
<h3 class="category-card-name">{{.Name}}</h3>
<p class="category-card-count">{{.ProductCount}} products</p>
</a>
</li>{{end}}
</ul>{{else}}<p class="categories-grid-empty">No categories to browse yet.</p>{{end}}
</section>
`))

type categoryCard struct {
	Slug         string
	Name         string
	ImageURL     string
	Letter       string
	ProductCount int
}

type categoriesGridData struct {
	Title      string
	Columns    int
	StoreSlug  string
	Loading    bool
	LazySrc    string
	Skeletons  []struct{}
	Categories []categoryCard
}

func (r *Renderer) renderCategoriesGrid(ctx context.Context, ten *tenant.Tenant, cfg Config) (template.HTML, error) {
	columns := clampInt(cfg.Int("columns", categoriesDefaultColumns), categoriesMinColumns, categoriesMaxColumns)
	title := cfg.Str("title", "Shop by category")

	// Lazy blocks ship the skeleton and let the client hydrate.
	if cfg.Bool("lazy", false) {
		return exec(categoriesGridTmpl, categoriesGridData{
			Title:     title,
			Columns:   columns,
			StoreSlug: ten.Slug,
			Loading:   true,
			LazySrc:   "/stores/" + ten.Slug + "/categories",
			Skeletons: make([]struct{}, skeletonCardCount),
		})
	}

	categories, err := r.api.Categories(ctx, ten.Slug)
	if err != nil {
		metrics.BlockFetchErrorsTotal.WithLabelValues(string(KindCategoriesGrid)).Inc()
		return "", nil
	}

	return exec(categoriesGridTmpl, categoriesGridData{
		Title:      title,
		Columns:    columns,
		StoreSlug:  ten.Slug,
		Categories: toCategoryCards(categories),
	})
}

func toCategoryCards(categories []catalog.Category) []categoryCard {
	cards := make([]categoryCard, 0, len(categories))
	for _, c := range categories {
		cards = append(cards, categoryCard{
			Slug:         c.Slug,
			Name:         c.Name,
			ImageURL:     c.ImageURL,
			Letter:       letterBadge(c.Name),
			ProductCount: c.ProductCount,
		})
	}
	return cards
}

// letterBadge is the deterministic placeholder for imageless cards.
func letterBadge(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
