package infoctl

import (
	"net/http"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/service/callbacksrv"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctlutil"
	"github.com/go-chi/chi/v5"
)

var callbackService callbacksrv.CallbackService

func Create(server chi.Router, callbackSrv callbacksrv.CallbackService) {
	callbackService = callbackSrv

	server.Get("/", healthHandler)
	server.Get("/status", healthHandler)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dto := callbackService.HealthReport(ctx)
	ctlutil.WriteJson(ctx, w, dto)
}
