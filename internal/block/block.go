// internal/block/block.go
//
// Block: one typed, independently configured content unit on a page.
//
// Context
// -------
// Themes carry an ordered list of blocks.  Each block is a tagged
// variant: the `type` string selects a renderer, `config` is an open
// key-value mapping that only the selected variant interprets, and
// `position` backs the ordering when blocks are resorted.  Tags minted
// by a newer admin surface than this binary understands normalize to
// KindUnknown, which the dispatcher skips silently; a page never fails
// because one block is from the future.
package block

// Kind is the normalized block discriminant.
type Kind string

const (
	KindHero            Kind = "hero"
	KindProductGrid     Kind = "product_grid"
	KindCategoriesGrid  Kind = "categories_grid"
	KindCountdownTimer  Kind = "countdown_timer"
	KindProductCarousel Kind = "product_carousel"
	KindVideoBanner     Kind = "video_banner"
	KindCustomText      Kind = "custom_text"
	KindUnknown         Kind = "unknown"
)

// Block is one entry of a theme’s ordered block list.
type Block struct {
	Type     string `json:"type"`
	Position int    `json:"position"`
	Config   Config `json:"config"`
}

// Kind maps the wire tag onto the typed discriminant.  Anything not in
// the known set is KindUnknown.
func (b Block) Kind() Kind {
	switch Kind(b.Type) {
	case KindHero, KindProductGrid, KindCategoriesGrid, KindCountdownTimer,
		KindProductCarousel, KindVideoBanner, KindCustomText:
		return Kind(b.Type)
	default:
		return KindUnknown
	}
}
