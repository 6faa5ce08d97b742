package callbacksrv

import (
	"context"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
)

func (i *Impl) HealthReport(ctx context.Context) paystackapi.HealthReportDto {
	return paystackapi.HealthReportDto{
		Status:  paystackapi.HealthStatusOk,
		Message: i.healthMessage,
	}
}

func (i *Impl) EffectiveReference(ctx context.Context, reference string, trxref string) (string, bool) {
	if reference != "" {
		return reference, true
	}
	if trxref != "" {
		aulogging.Logger.Ctx(ctx).Debug().Print("no reference parameter, using trxref")
		return trxref, true
	}
	return "", false
}
