package main

import (
	"os"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/app"
)

func main() {
	os.Exit(app.New().Run())
}
