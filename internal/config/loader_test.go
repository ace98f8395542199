// internal/config/loader_test.go
//
// Unit-tests for the layered loader: YAML base, STOREFRONT_ env
// overrides (double underscore maps to a dot), the catalog-timeout
// default, and fail-fast validation.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeConf lays out <tmp>/conf/storefront.yaml and returns the root.
func writeConf(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "conf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "storefront.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return root
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	root := writeConf(t, `
http:
  listen_addr: ":8080"
catalog:
  base_url: "http://localhost:9000/api/v1"
  timeout: 2s
`)
	t.Setenv("STOREFRONT_ROOT", root)
	t.Setenv("STOREFRONT_CATALOG__BASE_URL", "http://catalog.internal:9000/api/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// STOREFRONT_CATALOG__BASE_URL maps onto catalog.base_url and beats
	// the YAML value.
	if got := cfg.Catalog.BaseURL; got != "http://catalog.internal:9000/api/v1" {
		t.Fatalf("env override not applied, base_url = %q", got)
	}
	// Untouched keys keep their YAML values.
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Fatalf("listen_addr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Catalog.Timeout != 2*time.Second {
		t.Fatalf("timeout = %v, want 2s", cfg.Catalog.Timeout)
	}
	if cfg.Paths.Root != root {
		t.Fatalf("root = %q, want %q", cfg.Paths.Root, root)
	}
	if Get() != cfg {
		t.Fatal("Load must cache the config for Get()")
	}
}

func TestLoadDefaultsCatalogTimeout(t *testing.T) {
	root := writeConf(t, `
http:
  listen_addr: ":8080"
catalog:
  base_url: "http://localhost:9000/api/v1"
`)
	t.Setenv("STOREFRONT_ROOT", root)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Timeout != DefaultCatalogTimeout {
		t.Fatalf("timeout = %v, want default %v", cfg.Catalog.Timeout, DefaultCatalogTimeout)
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	root := writeConf(t, `
http:
  listen_addr: ":8080"
catalog:
  base_url: ""
`)
	t.Setenv("STOREFRONT_ROOT", root)

	if _, err := Load(); err == nil {
		t.Fatal("a missing catalog base URL must fail validation")
	}
}
