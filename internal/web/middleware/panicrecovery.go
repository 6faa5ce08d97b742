package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctlutil"
)

func PanicRecoveryMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				ctx := r.Context()
				aulogging.Logger.Ctx(ctx).Error().Printf("recovered from PANIC: %v\n%s", rvr, string(debug.Stack()))
				ctlutil.UnexpectedError(ctx, w, r, fmt.Errorf("panic: %v", rvr))
			}
		}()

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
