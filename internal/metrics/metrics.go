// Package metrics holds Prometheus instruments that are used across the
// storefront renderer.  All collectors are registered with the global
// registry, so importing this package in main.go is enough to expose
// them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreResolveTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_store_resolve_total",
			Help: "Cumulative number of store slugs successfully resolved.",
		})

	StoreResolveErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_store_resolve_errors_total",
			Help: "Cumulative number of slug lookups that found no store.",
		})

	ThemeLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_theme_load_total",
			Help: "Cumulative number of active themes loaded.",
		})

	FallbackRenderTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_fallback_render_total",
			Help: "Cumulative number of pages composed by the fallback path.",
		})

	BlockRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_block_render_total",
			Help: "Cumulative number of blocks rendered, labelled by type.",
		},
		[]string{"type"},
	)

	BlockSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_block_skipped_total",
			Help: "Cumulative number of blocks skipped for an unknown type.",
		})

	BlockFetchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_block_fetch_errors_total",
			Help: "Cumulative number of failed per-block catalog fetches.",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(
		StoreResolveTotal,
		StoreResolveErrorsTotal,
		ThemeLoadTotal,
		FallbackRenderTotal,
		BlockRenderTotal,
		BlockSkippedTotal,
		BlockFetchErrorsTotal,
	)
}
