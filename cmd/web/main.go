// cmd/web/main.go
//
// Storefront renderer – HTTP entry point.
//
// Request life-cycle
// ------------------
//
//  1. Load env vars (server-wide file → .env fallback).
//
//  2. Load typed configuration (YAML + STOREFRONT_ env overrides).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Build the catalog read-API client.
//
//  5. Expose Prometheus /metrics and a /healthz liveness endpoint.
//
//  6. Mount the storefront handler: slug resolution → theme load →
//     style compile → block dispatch (or fallback composition).
//
// Large comment blocks are framed by blank “//” lines; inline comments
// use a single “//”.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dropforge/storefront/internal/catalog"
	"github.com/dropforge/storefront/internal/config"
	"github.com/dropforge/storefront/internal/logger"
	"github.com/dropforge/storefront/internal/middleware"
	"github.com/dropforge/storefront/internal/requestinfo"
	"github.com/dropforge/storefront/internal/server"
	"github.com/dropforge/storefront/internal/storefront"
)

const serverEnvPath = "/usr/local/etc/storefront/global.env"

// version is stamped by the build pipeline via -ldflags.
var version = "dev"

// loadEnv prefers the server-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 2.  Catalog read-API client ─────────────────────────────────────
	//
	api, err := catalog.New(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	if err != nil {
		logOut.Fatalw("catalog client", "err", err)
	}
	logOut.Infow("catalog client ready", "base_url", cfg.Catalog.BaseURL)

	//
	// ── 3.  Router: metrics, health, storefront pages ───────────────────
	//
	r := chi.NewRouter()
	r.Use(requestinfo.Enrich)
	r.Use(middleware.Security)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	r.Mount("/", storefront.NewHandler(api).Routes())

	//
	// ── 4.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr, "version", version)
	if err := srv.ListenAndServe(); err != nil {
		logOut.Fatalw("http server", "err", err)
	}
}
