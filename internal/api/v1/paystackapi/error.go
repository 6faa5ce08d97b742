package paystackapi

import "net/url"

// ErrorDto is used for all error responses that are not rendered as a page.
type ErrorDto struct {
	Timestamp string     `json:"timestamp"`
	RequestId string     `json:"requestid"`
	Message   string     `json:"message"`
	Details   url.Values `json:"details,omitempty"`
}
