// internal/config/model.go
//
// Typed configuration model for the storefront renderer.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                              – dotenv values,
//   • `conf/storefront.yaml`                       – primary static file,
//   • `STOREFRONT_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Catalog section
//

// Catalog points the renderer at the tenant-scoped read API.  The base
// URL is the only piece of environment the rendering core consumes; the
// timeout bounds every fetch a block performs.
type Catalog struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or STOREFRONT_ROOT override) so later code
// can build absolute file paths (log directory, mainly).
type Paths struct {
	Root string // STOREFRONT_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Catalog Catalog `koanf:"catalog"`
	Paths   Paths   `koanf:"-"` // not loaded from config files
}
