// internal/storefront/page.go
//
// Page composition.
//
// Context
// -------
// One render = one strictly sequential pipeline: resolve tenant → load
// theme → compile stylesheet → dispatch blocks (or compose the
// fallback).  Only the block fetches inside the dispatcher fan out; the
// pipeline itself has no parallel branches because every stage needs the
// previous stage’s output.  The head builder collects everything the
// document shell emits into <head>; the compiled theme variables go in
// before tenant custom CSS ever could, so the tenant keeps the last
// word in the cascade.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"

	"github.com/dropforge/storefront/internal/block"
	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/head"
	"github.com/dropforge/storefront/internal/tenant"
	"github.com/dropforge/storefront/internal/theme"
)

var shellTmpl = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en">
<head>
{{.Head.Title}}
{{.Head.Metas}}
{{.Head.Links}}
{{.Head.Styles}}
{{.Head.Scripts}}
{{.Head.JSON}}
</head>
<body>
{{if .LogoURL}}<header class="store-header"><a href="/{{.StoreSlug}}"><img class="store-logo" src="{{.LogoURL}}" alt="{{.StoreName}}"></a></header>{{end}}
<main class="storefront">{{.Body}}</main>
</body>
</html>
`))

type pageData struct {
	Head      *head.Builder
	StoreSlug string
	StoreName string
	LogoURL   string
	Body      template.HTML
}

// composer renders complete storefront documents.
type composer struct {
	api    *catalog.Client
	blocks *block.Renderer
}

func newComposer(api *catalog.Client) *composer {
	return &composer{api: api, blocks: block.New(api)}
}

// render produces the full document for one resolved tenant.
func (c *composer) render(ctx context.Context, ten *tenant.Tenant) ([]byte, error) {
	th := theme.Load(ctx, c.api, ten.Slug)

	sheet := compileSheet(th)

	hb := head.New()
	hb.SetTitle(ten.Name)
	hb.Meta(`<meta charset="utf-8">`)
	hb.Meta(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	if ten.Description != "" {
		hb.Meta(`<meta name="description" content="` + template.HTMLEscapeString(ten.Description) + `">`)
	}
	if th != nil && th.FaviconURL != "" {
		hb.Link(`<link rel="icon" href="` + template.HTMLEscapeString(th.FaviconURL) + `">`)
	}
	if sheet.FontsURL != "" {
		hb.Link(`<link rel="stylesheet" href="` + template.HTMLEscapeString(sheet.FontsURL) + `">`)
	}
	hb.Style(sheet.CSSText)
	if ld := organizationLD(ten); ld != "" {
		hb.JSONLD(ld)
	}

	var body template.HTML
	if th == nil || len(th.Blocks) == 0 {
		body = c.blocks.Fallback(ctx, ten)
	} else {
		body = c.blocks.RenderAll(ctx, ten, th.Blocks)
	}

	data := pageData{
		Head:      hb,
		StoreSlug: ten.Slug,
		StoreName: ten.Name,
		Body:      body,
	}
	if th != nil {
		data.LogoURL = th.LogoURL
	}

	var buf bytes.Buffer
	if err := shellTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compileSheet tolerates a nil theme: the defaults still style the
// fallback page.
func compileSheet(th *theme.Theme) theme.Stylesheet {
	if th == nil {
		return theme.Compile(&theme.Theme{})
	}
	return theme.Compile(th)
}

// organizationLD emits minimal schema.org metadata for the store.
func organizationLD(ten *tenant.Tenant) string {
	ld, err := json.Marshal(struct {
		Context     string `json:"@context"`
		Type        string `json:"@type"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}{
		Context:     "https://schema.org",
		Type:        "OnlineStore",
		Name:        ten.Name,
		Description: ten.Description,
	})
	if err != nil {
		return ""
	}
	return string(ld)
}
