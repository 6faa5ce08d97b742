package acceptance

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/entity"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/inmemorydb"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/media"
	"github.com/go-http-utils/headers"
	"github.com/stretchr/testify/require"
)

type tstWebResponse struct {
	status      int
	body        string
	contentType string
	location    string
	header      http.Header
}

func tstWebResponseFromResponse(response *http.Response) tstWebResponse {
	status := response.StatusCode
	ct := ""
	if val, ok := response.Header[headers.ContentType]; ok {
		ct = val[0]
	}
	loc := ""
	if val, ok := response.Header[headers.Location]; ok {
		loc = val[0]
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		log.Fatal(err)
	}
	err = response.Body.Close()
	if err != nil {
		log.Fatal(err)
	}
	return tstWebResponse{
		status:      status,
		body:        string(body),
		contentType: ct,
		location:    loc,
		header:      response.Header,
	}
}

// redirects are not followed, so tests can look at them
var tstClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func tstPerform(request *http.Request) tstWebResponse {
	response, err := tstClient.Do(request)
	if err != nil {
		log.Fatal(err)
	}
	return tstWebResponseFromResponse(response)
}

func tstPerformGet(relativeUrlWithLeadingSlash string) tstWebResponse {
	request, err := http.NewRequest(http.MethodGet, ts.URL+relativeUrlWithLeadingSlash, nil)
	if err != nil {
		log.Fatal(err)
	}
	return tstPerform(request)
}

func tstPerformPost(relativeUrlWithLeadingSlash string, requestBody string, contentType string) tstWebResponse {
	request, err := http.NewRequest(http.MethodPost, ts.URL+relativeUrlWithLeadingSlash, strings.NewReader(requestBody))
	if err != nil {
		log.Fatal(err)
	}
	if contentType != "" {
		request.Header.Set(headers.ContentType, contentType)
	}
	return tstPerform(request)
}

func tstPerformPostJson(relativeUrlWithLeadingSlash string, requestBody string) tstWebResponse {
	return tstPerformPost(relativeUrlWithLeadingSlash, requestBody, media.ContentTypeApplicationJson)
}

// tip: dto := &XyzDto{}
func tstParseJson(body string, dto interface{}) {
	err := json.Unmarshal([]byte(body), dto)
	if err != nil {
		log.Fatal(err)
	}
}

func tstRequireErrorResponse(t *testing.T, response tstWebResponse, expectedStatus int, expectedMessage string) {
	require.Equal(t, expectedStatus, response.status, "unexpected http response status")
	errorDto := paystackapi.ErrorDto{}
	tstParseJson(response.body, &errorDto)
	require.Equal(t, expectedMessage, errorDto.Message, "unexpected error code")
	require.NotEmpty(t, errorDto.RequestId, "missing request id")
}

func tstRequireHtmlResponse(t *testing.T, response tstWebResponse, expectedStatus int) {
	require.Equal(t, expectedStatus, response.status, "unexpected http response status")
	require.Equal(t, media.ContentTypeTextHtml, response.contentType, "unexpected content type")
	require.Contains(t, response.body, "<html>")
}

func tstRequireSelfRecording(t *testing.T, expectedEntries ...string) {
	actual := selfMock.Recording()
	require.Equal(t, len(expectedEntries), len(actual))
	for i := range expectedEntries {
		require.Contains(t, actual[i], expectedEntries[i])
	}
}

func tstRequireProtocolEntries(t *testing.T, expectedProtocol ...entity.ProtocolEntry) {
	db := database.GetRepository().(*inmemorydb.InMemoryRepository)
	actualProtocol := db.ProtocolEntries()
	require.Equal(t, len(expectedProtocol), len(actualProtocol))
	for i, expected := range expectedProtocol {
		actual := *(actualProtocol[i])
		require.Equal(t, expected.ReferenceId, actual.ReferenceId)
		require.Equal(t, expected.Kind, actual.Kind)
		require.Equal(t, expected.Message, actual.Message)
		require.Equal(t, expected.Details, actual.Details)
	}
}

func tstProtocolDetails(t *testing.T, index int) string {
	db := database.GetRepository().(*inmemorydb.InMemoryRepository)
	actualProtocol := db.ProtocolEntries()
	require.Greater(t, len(actualProtocol), index)
	return actualProtocol[index].Details
}

// --- data ---

const tstChargeSuccessWebhook = `{"event":"charge.success","data":{"reference":"abc123"}}`

func tstBuildRealisticChargeSuccessWebhook() string {
	return `{
  "event": "charge.success",
  "data": {
    "id": 302961,
    "domain": "live",
    "status": "success",
    "reference": "qTPrJoy9Bx",
    "amount": 10000,
    "message": null,
    "gateway_response": "Approved by Financial Institution",
    "paid_at": "2016-09-30T21:10:19.000Z",
    "channel": "card",
    "currency": "NGN",
    "customer": {
      "email": "bojack@horsinaround.com",
      "customer_code": "CUS_xnxdt6s1zg1f4nx"
    }
  }
}`
}
