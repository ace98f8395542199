// internal/server/timeouts.go
//
// Hardened *http.Server constructor for the storefront renderer.
//
// A storefront page is assembled server-side in well under a second, so
// any connection held open longer is a stalled client rather than a
// slow render:
//
//   • ReadTimeout   (10 s) – caps slow header/body writers (slow-loris).
//   • WriteTimeout  (15 s) – bounds one full page render plus response.
//   • IdleTimeout   (60 s) – recycles idle keep-alive connections.
//

package server

import (
	"net/http"
	"time"
)

// New returns an *http.Server carrying the renderer's timeout defaults.
// Callers may still set fields (TLSConfig, ErrorLog) before
// ListenAndServe.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
