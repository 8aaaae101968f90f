// Package middleware holds in house middlewares for the http layer
package middleware

import (
	"net/http"

	"sitequery/internal/platform/logger"
	pnet "sitequery/internal/platform/net"

	"github.com/google/uuid"
)

// HeaderRequestID is the inbound/outbound request id header
const HeaderRequestID = "X-Request-ID"

// RequestID propagates the inbound X-Request-ID or issues a fresh uuid,
// stores it on the request context, and mirrors it on the response
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, reqID)

		ctx := pnet.WithRequestID(r.Context(), reqID)
		ctx = logger.WithRequest(ctx, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
