// Package simulatorctl implements a local simulator for the payment provider's checkout.
//
// Only registered if service.enable_simulator is set. Visiting /simulator/{reference} makes
// the webhook call the provider would make after a successful charge, then sends the browser
// to the verification page just like the provider's redirect would.
package simulatorctl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/self"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctlutil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var NowFunc = time.Now

var referenceRegex = regexp.MustCompile(`^[A-Za-z0-9_.=-]{1,100}$`)

func Create(server chi.Router) {
	server.Get("/simulator/{reference}", useSimulator)
}

func useSimulator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reference, err := referenceFromVars(ctx, w, r)
	if err != nil {
		return
	}

	data, err := json.Marshal(paystackapi.WebhookData{
		Id:        int64(uuid.New().ID()),
		Reference: reference,
		Status:    "success",
		Amount:    50000,
		Currency:  "NGN",
		Channel:   "card",
		PaidAt:    NowFunc().UTC().Format(time.RFC3339),
	})
	if err != nil {
		ctlutil.UnexpectedError(ctx, w, r, err)
		return
	}
	event := paystackapi.WebhookDto{
		Event: paystackapi.EventChargeSuccess,
		Data:  data,
	}

	if err := self.Get().CallWebhook(ctx, event); err != nil {
		errorHandler(ctx, w, http.StatusBadGateway,
			"failed to report to local webhook - see log for details",
			fmt.Sprintf("failed to report %s to webhook: %s", reference, err.Error()),
		)
		return
	}

	aulogging.Logger.Ctx(ctx).Info().Printf("simulator charged reference %s, redirecting", reference)
	query := url.Values{"reference": {reference}, "trxref": {reference}}
	http.Redirect(w, r, "/verify-payment?"+query.Encode(), http.StatusFound)
}

func referenceFromVars(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	reference := chi.URLParam(r, "reference")
	if !referenceRegex.MatchString(reference) {
		errorHandler(ctx, w, http.StatusBadRequest, "bad reference", fmt.Sprintf("simulator received invalid reference '%s'", url.QueryEscape(reference)))
		return "", fmt.Errorf("invalid reference")
	}
	return reference, nil
}

func errorHandler(ctx context.Context, w http.ResponseWriter, status int, message string, logmessage string) {
	aulogging.Logger.Ctx(ctx).Warn().Print(logmessage)
	ctlutil.WriteText(ctx, w, status, message)
}
