// Package chi provides thin adapters for using whynot-errors with
// the chi router.
//
// Chi uses standard net/http handlers, so whynot-errors works
// directly. This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	whynoterrors "github.com/whynotavailable/whynot-errors"
)

// RequestID is a convenience wrapper around whynoterrors.RequestID
// that returns a standard net/http middleware for chi.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.RequestID)
func RequestID(next http.Handler) http.Handler {
	return whynoterrors.RequestID(next)
}
