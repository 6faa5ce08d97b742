package self

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	aurestlogging "github.com/StephanHCB/go-autumn-restclient/implementation/requestlogging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/media"
	"github.com/go-http-utils/headers"
)

type Impl struct {
	client  aurestclientapi.Client
	baseUrl string
}

func requestManipulator(ctx context.Context, r *http.Request) {
	r.Header.Set(headers.ContentType, aurestclientapi.ContentTypeApplicationJson)
	r.Header.Set(media.HeaderXRequestId, ctxvalues.RequestId(ctx))
}

func newClient(baseUrl string) (Self, error) {
	httpClient, err := auresthttpclient.New(0, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := aurestlogging.New(httpClient)

	circuitBreakerClient := aurestbreaker.New(requestLoggingClient,
		"self-webhook-breaker",
		10,
		2*time.Minute,
		30*time.Second,
		15*time.Second,
	)

	return &Impl{
		client:  circuitBreakerClient,
		baseUrl: baseUrl,
	}, nil
}

func NewTestingClient(verifierClient aurestclientapi.Client, baseUrl string) Self {
	return &Impl{
		client:  verifierClient,
		baseUrl: baseUrl,
	}
}

func errByStatus(err error, status int) error {
	if err != nil {
		return err
	}
	if status >= 300 {
		return DownstreamError
	}
	return nil
}

func (i *Impl) CallWebhook(ctx context.Context, event paystackapi.WebhookDto) error {
	url := fmt.Sprintf("%s/webhook", i.baseUrl)
	requestBody, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %v", err)
	}
	var responseRaw *[]byte
	response := aurestclientapi.ParsedResponse{
		Body: &responseRaw,
	}
	err = i.client.Perform(ctx, http.MethodPost, url, string(requestBody), &response)
	return errByStatus(err, response.Status)
}
