package acceptance

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/eurofurence/reg-payment-paystack-callback/docs"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/entity"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/self"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/controller/simulatorctl"
	"github.com/stretchr/testify/require"
)

func TestSimulator_Success(t *testing.T) {
	tstSetup(tstConfigFile)
	defer tstShutdown()

	docs.Given("given the simulator is enabled and the clock is fixed")
	simulatorctl.NowFunc = func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("WAT", 3600))
	}
	defer func() { simulatorctl.NowFunc = time.Now }()

	docs.When("when a developer visits the simulator for a reference")
	response := tstPerformGet("/simulator/SIM-0001")

	docs.Then("then the browser is redirected to the verification page like the provider would")
	require.Equal(t, http.StatusFound, response.status)
	require.Equal(t, "/verify-payment?reference=SIM-0001&trxref=SIM-0001", response.location)

	docs.Then("and a charge.success webhook for the reference has been sent")
	tstRequireSelfRecording(t, `CallWebhook charge.success {"id":`)
	require.Contains(t, selfMock.Recording()[0], `"reference":"SIM-0001","status":"success"`)
	require.Contains(t, selfMock.Recording()[0], `"paid_at":"2024-05-01T11:30:00Z"`)
}

func TestSimulator_InvalidReference(t *testing.T) {
	tstSetup(tstConfigFile)
	defer tstShutdown()

	docs.When("when a developer visits the simulator with an invalid reference")
	response := tstPerformGet("/simulator/" + strings.Repeat("x", 101))

	docs.Then("then the request fails with a plain text error")
	require.Equal(t, http.StatusBadRequest, response.status)
	require.Equal(t, "bad reference", response.body)

	docs.Then("and no webhook has been sent")
	tstRequireSelfRecording(t)
}

func TestSimulator_WebhookFails(t *testing.T) {
	tstSetup(tstConfigFile)
	defer tstShutdown()

	docs.Given("given our own webhook cannot be reached")
	selfMock.SimulateError(self.DownstreamError)

	docs.When("when a developer visits the simulator")
	response := tstPerformGet("/simulator/SIM-0002")

	docs.Then("then the request fails with the appropriate error")
	require.Equal(t, http.StatusBadGateway, response.status)
	require.Equal(t, "failed to report to local webhook - see log for details", response.body)
}

func TestSimulator_EndToEnd(t *testing.T) {
	tstSetup(tstConfigFile)
	defer tstShutdown()

	docs.Given("given the simulator talks to the running service through the real client")
	config.Configuration().Service.PublicURL = ts.URL
	require.Nil(t, self.Create())

	docs.When("when a developer visits the simulator and follows the redirect")
	response := tstPerformGet("/simulator/SIM-0003")
	require.Equal(t, http.StatusFound, response.status)
	page := tstPerformGet(response.location)

	docs.Then("then the verification page shows the reference")
	tstRequireHtmlResponse(t, page, http.StatusOK)
	require.Contains(t, page.body, `<div class="code">SIM-0003</div>`)

	docs.Then("and the webhook has been received and recorded")
	tstRequireProtocolEntries(t, entity.ProtocolEntry{
		Kind:    "raw",
		Message: "webhook request",
		Details: tstProtocolDetails(t, 0),
	}, entity.ProtocolEntry{
		ReferenceId: "SIM-0003",
		Kind:        "webhook",
		Message:     "webhook charge.success",
		Details:     "status=success",
	})
	require.Contains(t, tstProtocolDetails(t, 0), `"event":"charge.success"`)
}

func TestSimulator_Disabled(t *testing.T) {
	tstSetup("../resources/testconfig-nosimulator.yaml")
	defer tstShutdown()

	docs.Given("given the simulator is not enabled")

	docs.When("when someone visits the simulator")
	response := tstPerformGet("/simulator/SIM-0004")

	docs.Then("then the route does not exist")
	tstRequireErrorResponse(t, response, http.StatusNotFound, "not.found")
	tstRequireSelfRecording(t)
}
