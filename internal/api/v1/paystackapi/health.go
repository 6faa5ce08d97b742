package paystackapi

type HealthReportDto struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const HealthStatusOk = "ok"
