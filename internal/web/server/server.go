package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/StephanHCB/go-autumn-logging-zerolog/loggermiddleware"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/service/callbacksrv"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/controller/fallbackctl"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/controller/infoctl"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/controller/paymentctl"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/controller/simulatorctl"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/controller/webhookctl"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/middleware"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/util/ctxvalues"
	"github.com/go-chi/chi/v5"
)

func Create(callbackSrv callbacksrv.CallbackService) chi.Router {
	aulogging.Logger.NoCtx().Info().Print("Building routers...")
	aulogging.RequestIdRetriever = ctxvalues.RequestId
	server := chi.NewRouter()

	server.Use(middleware.CtxValuesMiddleware)
	server.Use(middleware.RequestIdMiddleware)
	server.Use(loggermiddleware.AddZerologLoggerToContext)
	server.Use(middleware.RequestLoggerMiddleware)
	server.Use(middleware.PanicRecoveryMiddleware)
	server.Use(middleware.CorsHandlingMiddleware)

	infoctl.Create(server, callbackSrv)
	paymentctl.Create(server, callbackSrv)
	webhookctl.Create(server, callbackSrv)
	if config.SimulatorEnabled() {
		aulogging.Logger.NoCtx().Warn().Print("service.enable_simulator is set. Exposing /simulator (not useful for production!)")
		simulatorctl.Create(server)
	}
	fallbackctl.Create(server)

	return server
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         config.ServerAddr(),
		Handler:      handler,
		ReadTimeout:  config.ServerReadTimeout(),
		WriteTimeout: config.ServerWriteTimeout(),
		IdleTimeout:  config.ServerIdleTimeout(),
	}
}

// Serve blocks until the server is shut down by SIGINT or SIGTERM, or fails to start.
func Serve(handler http.Handler) error {
	srv := newServer(handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		aulogging.Logger.NoCtx().Info().Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			aulogging.Logger.NoCtx().Error().WithErr(err).Printf("Fatal error while starting server: %s", err.Error())
		}
		return err
	case <-ctx.Done():
	}

	aulogging.Logger.NoCtx().Info().Print("Received signal, shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		aulogging.Logger.NoCtx().Error().WithErr(err).Printf("Failed to shut down server gracefully: %s", err.Error())
		return err
	}
	aulogging.Logger.NoCtx().Info().Print("Shutdown complete")
	return nil
}
