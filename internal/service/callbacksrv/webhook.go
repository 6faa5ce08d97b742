package callbacksrv

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/entity"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/media"
)

func (i *Impl) LogRawWebhook(ctx context.Context, contentType string, payload string) error {
	aulogging.Logger.Ctx(ctx).Info().Print("webhook received: " + payload)

	return i.protocol.WriteProtocolEntry(ctx, &entity.ProtocolEntry{
		ReferenceId: "",
		Kind:        "raw",
		Message:     "webhook request",
		Details:     payload,
		RequestId:   ctxvalues.RequestId(ctx),
	})
}

func (i *Impl) HandleWebhook(ctx context.Context, contentType string, payload string) WebhookSummary {
	summary := summarize(contentType, payload)
	if !summary.Parsed {
		aulogging.Logger.Ctx(ctx).Warn().Printf("webhook body could not be read as %s - acknowledged anyway", mediaTypeOf(contentType))
	}

	event := summary.Event
	if event == "" {
		event = "unknown"
	}
	aulogging.Logger.Ctx(ctx).Info().Printf("webhook event=%s reference=%s status=%s", event, summary.Reference, summary.Status)

	if err := i.protocol.WriteProtocolEntry(ctx, &entity.ProtocolEntry{
		ReferenceId: summary.Reference,
		Kind:        "webhook",
		Message:     fmt.Sprintf("webhook %s", event),
		Details:     fmt.Sprintf("status=%s", summary.Status),
		RequestId:   ctxvalues.RequestId(ctx),
	}); err != nil {
		// log and ignore
		aulogging.Logger.Ctx(ctx).Error().Printf("failed to write webhook summary to protocol: %s", err.Error())
	}

	return summary
}

func mediaTypeOf(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

func summarize(contentType string, payload string) WebhookSummary {
	switch mediaTypeOf(contentType) {
	case media.ContentTypeFormUrlencoded:
		return summarizeForm(payload)
	case media.ContentTypeApplicationJson:
		return summarizeJson(payload)
	default:
		// providers do not always send a content type, so sniff
		if strings.HasPrefix(strings.TrimSpace(payload), "{") {
			return summarizeJson(payload)
		}
		return summarizeForm(payload)
	}
}

// webhookIdentity only holds what goes into the log line, so the type of any other field
// in data does not matter.
type webhookIdentity struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

func summarizeJson(payload string) WebhookSummary {
	dto := paystackapi.WebhookDto{}
	if err := json.Unmarshal([]byte(payload), &dto); err != nil {
		return WebhookSummary{}
	}

	summary := WebhookSummary{
		Event:  dto.Event,
		Parsed: true,
	}

	data := webhookIdentity{}
	if len(dto.Data) > 0 && json.Unmarshal(dto.Data, &data) == nil {
		summary.Reference = data.Reference
		summary.Status = data.Status
	}
	return summary
}

func summarizeForm(payload string) WebhookSummary {
	values, err := url.ParseQuery(payload)
	if err != nil || len(values) == 0 {
		return WebhookSummary{}
	}

	reference := values.Get("reference")
	if reference == "" {
		reference = values.Get("data[reference]")
	}
	status := values.Get("status")
	if status == "" {
		status = values.Get("data[status]")
	}
	return WebhookSummary{
		Event:     values.Get("event"),
		Reference: reference,
		Status:    status,
		Parsed:    true,
	}
}
