package self

import (
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
)

var activeInstance Self

func Create() (err error) {
	activeInstance, err = newClient(config.ServicePublicURL())
	return err
}

func CreateMock() Mock {
	instance := newMock()
	activeInstance = instance
	return instance
}

func Get() Self {
	return activeInstance
}
