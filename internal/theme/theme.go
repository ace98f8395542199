// Package theme holds the data structures that describe one tenant’s
// active visual configuration.  A Theme combines:
//
//   - branding      – logo and favicon URLs,
//   - palette       – named colors compiled into CSS custom properties,
//   - typography    – heading and body font families (Google Fonts),
//   - custom CSS    – free-form stylesheet text appended verbatim,
//   - blocks        – the ordered content blocks the dispatcher renders.
//
// At most one theme is active per store; the backend enforces that, the
// renderer only ever observes the active one.  A Theme with zero blocks
// is a valid state, distinct from “no theme at all”—both end in fallback
// composition, but callers must be able to tell them apart.
package theme

import (
	"github.com/dropforge/storefront/internal/block"
)

// Colors is the tenant palette.  Empty fields fall back to the compiler
// defaults; the compiler never errors on a missing color.
type Colors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Accent     string `json:"accent,omitempty"`
}

// Typography names the font families referenced by the compiled CSS.
type Typography struct {
	HeadingFont string `json:"heading_font,omitempty"`
	BodyFont    string `json:"body_font,omitempty"`
}

// Theme is the active visual configuration of one store.
type Theme struct {
	LogoURL    string        `json:"logo_url,omitempty"`
	FaviconURL string        `json:"favicon_url,omitempty"`
	CustomCSS  string        `json:"custom_css,omitempty"`
	Colors     Colors        `json:"colors"`
	Typography Typography    `json:"typography"`
	Blocks     []block.Block `json:"blocks"`
}
