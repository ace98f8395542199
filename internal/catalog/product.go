// internal/catalog/product.go
//
// Product wire model and the two presentation predicates the storefront
// derives from it.  Prices arrive as decimal strings; all money math
// goes through shopspring/decimal so "19.90" never turns into 19.899999.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// newWindow is how long a product counts as “new” after creation.
const newWindow = 7 * 24 * time.Hour

// Product is one row of a store’s public catalog.
type Product struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Price          string    `json:"price"`
	CompareAtPrice string    `json:"compare_at_price,omitempty"`
	Images         []string  `json:"images"`
	CreatedAt      time.Time `json:"created_at"`
}

// FirstImage returns the lead image URL, or "" when the product has none.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// IsNew reports whether the product was created within the last seven
// days of the supplied render time.
func (p Product) IsNew(now time.Time) bool {
	if p.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(p.CreatedAt) <= newWindow
}

// DiscountPercent returns round((compare − price) / price × 100), the
// saving relative to what the customer pays, or 0 when the compare-at
// price is absent, unparsable, or not strictly greater than the price.
// Never negative.  A price of 80.00 against a compare-at of 100.00 is
// a 25% discount.
func (p Product) DiscountPercent() int {
	if p.CompareAtPrice == "" {
		return 0
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return 0
	}
	compare, err := decimal.NewFromString(p.CompareAtPrice)
	if err != nil {
		return 0
	}
	if compare.LessThanOrEqual(price) || !price.IsPositive() {
		return 0
	}
	pct := compare.Sub(price).
		Div(price).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}
