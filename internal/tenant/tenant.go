// internal/tenant/tenant.go
//
// Tenant aggregate.
//
// Context
// -------
// A Tenant is one customer’s isolated storefront, identified by a
// globally unique, URL-safe slug.  The record is read-only here: the
// admin surface creates and mutates stores, the renderer only observes
// them.  A resolved Tenant is immutable for the duration of a single
// render and is passed to renderers explicitly—never smuggled through
// ambient state.
package tenant

// Tenant mirrors one store record from the read API.
type Tenant struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Niche       string `json:"niche,omitempty"`
	Description string `json:"description,omitempty"`
}
