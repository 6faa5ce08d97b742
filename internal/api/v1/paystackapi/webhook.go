package paystackapi

import (
	"encoding/json"
)

// WebhookDto is the envelope of every event the payment provider posts to us.
//
// We only ever read it tolerantly for the log line, Data stays raw.
type WebhookDto struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

const (
	EventChargeSuccess   = "charge.success"
	EventTransferSuccess = "transfer.success"
	EventTransferFailed  = "transfer.failed"
	EventRefundProcessed = "refund.processed"
)

// WebhookData contains the fields common to the charge, transfer and refund events.
type WebhookData struct {
	Id        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	PaidAt    string `json:"paid_at"`
}
