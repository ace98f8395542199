// internal/storefront/handler.go
//
// HTTP surface of the renderer.
//
// Context
// -------
// The storefront answers GET /{slug} with a complete storefront page.
// The slug normally rides the URL; an edge proxy that terminates vanity
// domains sets the X-Store-Slug routing header instead, which wins when
// present.  An unresolvable slug is terminal: the not-found page goes
// out and nothing further executes.
package storefront

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/tenant"
)

// SlugHeader is set by the routing edge when a vanity domain maps to a
// store.
const SlugHeader = "X-Store-Slug"

// Handler serves rendered storefront pages.
type Handler struct {
	resolver *tenant.Resolver
	pages    *composer
}

// NewHandler wires the handler to the catalog read API.
func NewHandler(api *catalog.Client) *Handler {
	return &Handler{
		resolver: tenant.NewResolver(api),
		pages:    newComposer(api),
	}
}

// Routes mounts the storefront endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{slug}", h.serveStore)
	return r
}

func (h *Handler) serveStore(w http.ResponseWriter, r *http.Request) {
	slug := r.Header.Get(SlugHeader)
	if slug == "" {
		slug = chi.URLParam(r, "slug")
	}

	ten, err := h.resolver.Resolve(r.Context(), slug)
	if err != nil {
		if !errors.Is(err, tenant.ErrNotFound) {
			zap.S().Errorw("store resolution failed", "slug", slug, "err", err)
		}
		notFound(w)
		return
	}

	page, err := h.pages.render(r.Context(), ten)
	if err != nil {
		zap.S().Errorw("page render failed", "slug", slug, "err", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// notFound is the terminal answer for an unresolvable slug.
func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`<!doctype html>
<html lang="en">
<head><title>Store not found</title></head>
<body><main class="storefront storefront--missing"><h1>Store not found</h1>
<p>The store you are looking for does not exist or is no longer available.</p></main></body>
</html>
`))
}
