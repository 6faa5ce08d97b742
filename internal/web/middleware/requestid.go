package middleware

import (
	"net/http"
	"regexp"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/media"
	"github.com/google/uuid"
)

var validRequestIdPattern = regexp.MustCompile("^[0-9a-zA-Z_-]{1,64}$")

// RequestIdMiddleware keeps a well-formed incoming X-Request-Id, or generates a short one,
// and echoes it in the response.
func RequestIdMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		reqUuidStr := r.Header.Get(media.HeaderXRequestId)
		if !validRequestIdPattern.MatchString(reqUuidStr) {
			reqUuidStr = uuid.NewString()[:8]
		}

		ctxvalues.SetRequestId(r.Context(), reqUuidStr)
		w.Header().Set(media.HeaderXRequestId, reqUuidStr)

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
