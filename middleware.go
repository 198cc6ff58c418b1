package whynoterrors

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// HeaderRequestID is the header used to propagate request IDs.
const HeaderRequestID = "X-Request-Id"

type ctxKey string

const requestIDKey ctxKey = "whynoterrors.request_id"

// RequestIDFromRequest extracts the request ID from the request
// header or context. Returns "" when neither carries one.
func RequestIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	// Header wins over context
	if id := r.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	if v := r.Context().Value(requestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID generates or propagates a request ID for each request,
// so error bodies written by Write stay correlatable even though
// they carry nothing but the message.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = newRequestID()
		}
		ctx := WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newRequestID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
