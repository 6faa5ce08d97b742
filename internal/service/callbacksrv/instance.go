package callbacksrv

import (
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/dbrepo"
)

type Impl struct {
	protocol      dbrepo.Repository
	healthMessage string
}

// New creates the service. All webhook payloads go to protocol, which must not be nil.
func New(protocol dbrepo.Repository, healthMessage string) CallbackService {
	return &Impl{
		protocol:      protocol,
		healthMessage: healthMessage,
	}
}
