// internal/catalog/category.go
//
// Category wire model.  The storefront only ever consumes the flat
// top-level list; the admin-side parent/child hierarchy never crosses
// this boundary.
package catalog

// Category is one top-level category of a store’s catalog.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ProductCount int    `json:"product_count"`
}
