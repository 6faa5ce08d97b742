package middleware

import (
	"net/http"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/go-http-utils/headers"
)

// CorsHandlingMiddleware allows cross-origin requests on every route and answers preflights.
func CorsHandlingMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headers.AccessControlAllowOrigin, config.CorsAllowOrigin())
		w.Header().Set(headers.AccessControlAllowMethods, "GET, HEAD, POST, OPTIONS")
		w.Header().Set(headers.AccessControlAllowHeaders, "content-type, x-request-id")
		w.Header().Set(headers.AccessControlExposeHeaders, "X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
