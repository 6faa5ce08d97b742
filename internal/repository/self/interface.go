package self

import (
	"context"
	"errors"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
)

// Self lets the simulator talk to our own webhook endpoint the way the payment provider would.
type Self interface {
	CallWebhook(ctx context.Context, event paystackapi.WebhookDto) error
}

var (
	DownstreamError = errors.New("downstream unavailable - see log for details")
)
