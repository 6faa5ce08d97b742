// Package api is the entry point for serverless platforms that call one exported
// http.HandlerFunc per request instead of running a listening server.
//
// Configuration comes from defaults and environment variables only.
package api

import (
	"net/http"
	"sync"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/app"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

func setup() {
	if initErr = app.InitializeWithDefaults(); initErr != nil {
		return
	}
	handler, initErr = app.CreateRouter()
}

// Handler serves a single request, building the router on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		http.Error(w, "service misconfigured - see log for details", http.StatusServiceUnavailable)
		return
	}
	handler.ServeHTTP(w, r)
}
