package paymentctl

import (
	"context"
	"net/http"
	"net/url"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/service/callbacksrv"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/pages"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctlutil"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"
)

var callbackService callbacksrv.CallbackService

func Create(server chi.Router, callbackSrv callbacksrv.CallbackService) {
	callbackService = callbackSrv

	server.Get("/verify-payment", verifyPaymentHandler)
	server.Get("/payment-failed", paymentFailedHandler)
}

func verifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	reference, ok := callbackService.EffectiveReference(ctx, query.Get("reference"), query.Get("trxref"))
	if !ok {
		aulogging.Logger.Ctx(ctx).Warn().Print("verify-payment called without reference or trxref")
		renderPage(ctx, w, r, http.StatusBadRequest, pages.VerifyMissing, pageData("Payment Error", ""))
		return
	}

	aulogging.Logger.Ctx(ctx).Info().Printf("verify-payment showing reference %s", url.QueryEscape(reference))
	renderPage(ctx, w, r, http.StatusOK, pages.VerifySuccess, pageData("Payment Successful", reference))
}

func paymentFailedHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(r.Context(), w, r, http.StatusOK, pages.PaymentFailed, pageData("Payment Failed", ""))
}

func pageData(title string, reference string) pages.PageData {
	return pages.PageData{
		Title:       title,
		ServiceName: config.ServiceName(),
		ClientName:  config.ClientName(),
		Reference:   reference,
	}
}

func renderPage(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, name string, data pages.PageData) {
	body, err := pages.Render(name, data)
	if err != nil {
		ctlutil.UnexpectedError(ctx, w, r, err)
		return
	}
	w.Header().Set(headers.ContentType, media.ContentTypeTextHtml)
	w.Header().Set(headers.CacheControl, "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("error while writing page %s: %s", name, err.Error())
	}
}
