package callbacksrv

import (
	"context"
	"errors"
	"testing"

	aulogging "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/eurofurence/reg-payment-paystack-callback/docs"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/entity"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/inmemorydb"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	aulogging.SetupPlaintextLogging()
	m.Run()
}

type failingRepository struct {
	inmemorydb.InMemoryRepository
}

func (f *failingRepository) WriteProtocolEntry(ctx context.Context, e *entity.ProtocolEntry) error {
	return errors.New("database is on fire")
}

func tstService() (CallbackService, *inmemorydb.InMemoryRepository) {
	db := inmemorydb.Create(100).(*inmemorydb.InMemoryRepository)
	return New(db, "Paystack callback API is running"), db
}

func tstContext() context.Context {
	ctx := ctxvalues.CreateContextWithValueMap(context.Background())
	ctxvalues.SetRequestId(ctx, "a1b2c3d4")
	return ctx
}

func TestHealthReport(t *testing.T) {
	docs.Description("the health report is always ok and carries the configured message")
	cut, _ := tstService()
	actual := cut.HealthReport(tstContext())
	require.Equal(t, "ok", actual.Status)
	require.Equal(t, "Paystack callback API is running", actual.Message)
}

func TestEffectiveReference(t *testing.T) {
	docs.Description("reference wins over trxref, empty values count as absent")
	cut, _ := tstService()
	for _, tc := range []struct {
		name      string
		reference string
		trxref    string
		expected  string
		ok        bool
	}{
		{"both absent", "", "", "", false},
		{"reference only", "R-123", "", "R-123", true},
		{"trxref only", "", "T-456", "T-456", true},
		{"both present", "R-123", "T-456", "R-123", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := cut.EffectiveReference(tstContext(), tc.reference, tc.trxref)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestLogRawWebhook(t *testing.T) {
	docs.Description("the raw webhook body is written to the protocol verbatim")
	cut, db := tstService()
	payload := `{"event":"charge.success","data":{"reference":"abc123"}}`

	require.Nil(t, cut.LogRawWebhook(tstContext(), "application/json", payload))

	actual := db.ProtocolEntries()
	require.Equal(t, 1, len(actual))
	require.Equal(t, "raw", actual[0].Kind)
	require.Equal(t, "webhook request", actual[0].Message)
	require.Equal(t, payload, actual[0].Details)
	require.Equal(t, "a1b2c3d4", actual[0].RequestId)
}

func TestLogRawWebhookProtocolFailure(t *testing.T) {
	docs.Description("a protocol write failure is reported to the caller")
	cut := New(&failingRepository{}, "")
	require.NotNil(t, cut.LogRawWebhook(tstContext(), "application/json", "{}"))
}

func TestHandleWebhookJson(t *testing.T) {
	docs.Description("event, reference and status are read from a json webhook")
	cut, db := tstService()
	payload := `{"event":"charge.success","data":{"id":302961,"reference":"abc123","status":"success","amount":50000,"currency":"NGN","extra":{"ignored":true}}}`

	actual := cut.HandleWebhook(tstContext(), "application/json; charset=utf-8", payload)

	require.Equal(t, WebhookSummary{Event: "charge.success", Reference: "abc123", Status: "success", Parsed: true}, actual)
	entries := db.ProtocolEntries()
	require.Equal(t, 1, len(entries))
	require.Equal(t, "webhook", entries[0].Kind)
	require.Equal(t, "abc123", entries[0].ReferenceId)
	require.Equal(t, "webhook charge.success", entries[0].Message)
	require.Equal(t, "status=success", entries[0].Details)
}

func TestHandleWebhookJsonUnexpectedFieldTypes(t *testing.T) {
	docs.Description("fields we do not read may have any type without losing reference and status")
	cut, _ := tstService()
	for _, payload := range []string{
		`{"event":"charge.success","data":{"id":"302961","reference":"abc123","status":"success"}}`,
		`{"event":"charge.success","data":{"amount":100.5,"reference":"abc123","status":"success"}}`,
	} {
		actual := cut.HandleWebhook(tstContext(), "application/json", payload)
		require.Equal(t, WebhookSummary{Event: "charge.success", Reference: "abc123", Status: "success", Parsed: true}, actual, payload)
	}
}

func TestHandleWebhookJsonWithoutContentType(t *testing.T) {
	docs.Description("a json body is recognized even without content type")
	cut, _ := tstService()
	actual := cut.HandleWebhook(tstContext(), "", ` {"event":"transfer.failed","data":{"reference":"tr-9"}}`)
	require.Equal(t, "transfer.failed", actual.Event)
	require.Equal(t, "tr-9", actual.Reference)
}

func TestHandleWebhookForm(t *testing.T) {
	docs.Description("event and reference are read from a url encoded webhook")
	cut, _ := tstService()
	actual := cut.HandleWebhook(tstContext(), "application/x-www-form-urlencoded", "event=charge.success&data%5Breference%5D=abc123&data%5Bstatus%5D=success")
	require.Equal(t, WebhookSummary{Event: "charge.success", Reference: "abc123", Status: "success", Parsed: true}, actual)
}

func TestHandleWebhookMalformed(t *testing.T) {
	docs.Description("a malformed body is accepted and protocolled as unknown")
	cut, db := tstService()
	actual := cut.HandleWebhook(tstContext(), "application/json", `{{{{}}`)
	require.False(t, actual.Parsed)

	entries := db.ProtocolEntries()
	require.Equal(t, 1, len(entries))
	require.Equal(t, "webhook unknown", entries[0].Message)
	require.Equal(t, "", entries[0].ReferenceId)
}

func TestHandleWebhookEmpty(t *testing.T) {
	docs.Description("an empty body is accepted")
	cut, _ := tstService()
	actual := cut.HandleWebhook(tstContext(), "", "")
	require.Equal(t, WebhookSummary{}, actual)
}

func TestHandleWebhookProtocolFailureIgnored(t *testing.T) {
	docs.Description("a protocol write failure does not affect the summary")
	cut := New(&failingRepository{}, "")
	actual := cut.HandleWebhook(tstContext(), "application/json", `{"event":"charge.success","data":{"reference":"abc123"}}`)
	require.Equal(t, "abc123", actual.Reference)
}
