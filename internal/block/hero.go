// internal/block/hero.go
//
// Hero banner.  No fetch.  Title and subtitle default to the tenant’s
// own name and description so a bare `{"type":"hero"}` block is already
// presentable; the niche badge renders whenever the store has one.
package block

import (
	"html/template"

	"github.com/dropforge/storefront/internal/tenant"
)

var heroTmpl = template.Must(template.New("hero").Parse(`<section class="block hero hero--{{.Align}}"{{if .ImageURL}} style="background-image:url('{{.ImageURL}}')"{{end}}>
<div class="hero-inner">
{{if .Niche}}<span class="hero-badge">{{.Niche}}</span>{{end}}
<h1 class="hero-title">{{.Title}}</h1>
{{if .Subtitle}}<p class="hero-subtitle">{{.Subtitle}}</p>{{end}}
{{if .CTALabel}}<a class="hero-cta" href="{{.CTAURL}}">{{.CTALabel}}</a>{{end}}
</div>
</section>
`))

type heroData struct {
	Title    string
	Subtitle string
	Niche    string
	ImageURL string
	CTALabel string
	CTAURL   string
	Align    string
}

func (r *Renderer) renderHero(ten *tenant.Tenant, cfg Config) (template.HTML, error) {
	return exec(heroTmpl, heroData{
		Title:    cfg.Str("title", ten.Name),
		Subtitle: cfg.Str("subtitle", ten.Description),
		Niche:    ten.Niche,
		ImageURL: cfg.Str("image_url", ""),
		CTALabel: cfg.Str("cta_label", ""),
		CTAURL:   cfg.Str("cta_url", "#"),
		Align:    alignment(cfg.Str("align", ""), "center"),
	})
}

// alignment narrows a free-form config value to the supported set; an
// unknown value falls back to the variant’s documented default.
func alignment(v, def string) string {
	switch v {
	case "left", "center", "right":
		return v
	default:
		return def
	}
}
