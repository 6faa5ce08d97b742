package webhookctl

import (
	"context"
	"io"
	"net/http"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/service/callbacksrv"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctlutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"
)

const acknowledgement = "Webhook received"

var callbackService callbacksrv.CallbackService

func Create(server chi.Router, callbackSrv callbacksrv.CallbackService) {
	callbackService = callbackSrv

	server.Post("/webhook", webhookHandler)
}

// webhookHandler acknowledges every delivery. Signatures are not checked and nothing is
// processed, the payload only ends up in the protocol and the log.
func webhookHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contentType := r.Header.Get(headers.ContentType)

	payload := readBodyTolerant(ctx, w, r)

	if err := callbackService.LogRawWebhook(ctx, contentType, payload); err != nil {
		// log and ignore
		aulogging.Logger.Ctx(ctx).Error().Printf("failed to write incoming webhook payload to protocol: %s", err.Error())
	}

	_ = callbackService.HandleWebhook(ctx, contentType, payload)

	ctlutil.WriteText(ctx, w, http.StatusOK, acknowledgement)
}

// readBodyTolerant returns whatever could be read, a broken or oversized body is logged
// but still acknowledged.
func readBodyTolerant(ctx context.Context, w http.ResponseWriter, r *http.Request) string {
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, config.MaxBodyBytes()))
	if err != nil {
		aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("webhook body could not be read completely: %s", err.Error())
	}
	return string(bodyBytes)
}
