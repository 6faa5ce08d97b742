package middleware

import (
	"net/http"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
)

// CtxValuesMiddleware must come first so later middlewares have a value map.
func CtxValuesMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxvalues.CreateContextWithValueMap(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
