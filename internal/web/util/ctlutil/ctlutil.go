package ctlutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/media"
	"github.com/go-http-utils/headers"
)

const isoDateTimeFormat = "2006-01-02T15:04:05-07:00"

// WriteJson sets the content type and encodes the dto. Status must already have been written
// if it is not 200.
func WriteJson(ctx context.Context, w http.ResponseWriter, dto interface{}) {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	encoder := json.NewEncoder(w)
	err := encoder.Encode(dto)
	if err != nil {
		aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("error while encoding json response: %s", err.Error())
	}
}

func WriteText(ctx context.Context, w http.ResponseWriter, status int, text string) {
	w.Header().Set(headers.ContentType, media.ContentTypeTextPlain)
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("error while writing text response: %s", err.Error())
	}
}

func ErrorHandler(ctx context.Context, w http.ResponseWriter, r *http.Request, msg string, status int, details url.Values) {
	timestamp := time.Now().Format(isoDateTimeFormat)
	response := paystackapi.ErrorDto{Message: msg, Timestamp: timestamp, Details: details, RequestId: ctxvalues.RequestId(ctx)}
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(status)
	WriteJson(ctx, w, response)
}

func UnexpectedError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	aulogging.Logger.Ctx(ctx).Error().WithErr(err).Printf("unexpected error: %s", err.Error())
	ErrorHandler(ctx, w, r, "http.server.error", http.StatusInternalServerError, url.Values{})
}
