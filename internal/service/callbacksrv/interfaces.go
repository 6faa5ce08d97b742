package callbacksrv

import (
	"context"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
)

type CallbackService interface {
	// HealthReport is what the liveness probes return.
	HealthReport(ctx context.Context) paystackapi.HealthReportDto

	// EffectiveReference picks the payment reference the browser was redirected with.
	//
	// reference wins over trxref, empty values count as absent. ok is false if neither is set.
	EffectiveReference(ctx context.Context, reference string, trxref string) (effective string, ok bool)

	// LogRawWebhook records the webhook body verbatim in the diagnostic protocol.
	LogRawWebhook(ctx context.Context, contentType string, payload string) error

	// HandleWebhook reads event name and reference from the payload as far as possible and logs them.
	//
	// The payload is never validated, so this cannot fail. The webhook is always acknowledged.
	HandleWebhook(ctx context.Context, contentType string, payload string) WebhookSummary
}

// WebhookSummary is what we could make of a webhook payload. Empty fields mean unknown.
type WebhookSummary struct {
	Event     string
	Reference string
	Status    string
	Parsed    bool
}
