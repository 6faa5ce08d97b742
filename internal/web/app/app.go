package app

import (
	"strings"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/self"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/service/callbacksrv"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/web/server"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Application interface {
	Run() int
}

type Impl struct{}

func New() Application {
	return &Impl{}
}

func (i *Impl) Run() int {
	if err := Initialize(); err != nil {
		return 1
	}
	defer database.Close()

	if err := database.MigrateIfSupportedAndConfigured(); err != nil {
		return 1
	}

	router, err := CreateRouter()
	if err != nil {
		return 1
	}

	if err := server.Serve(router); err != nil {
		return 2
	}
	return 0
}

// Initialize parses the command line, sets up logging and reads the configuration, then opens the database.
func Initialize() error {
	config.ParseCommandLineFlags()
	setupLogging(config.UseEcsLogging())

	if err := config.LoadConfiguration(); err != nil {
		return err
	}
	applyLoggingSeverity(config.LoggingSeverity())

	return database.Open()
}

// InitializeWithDefaults is Initialize for environments without a command line.
func InitializeWithDefaults() error {
	setupLogging(false)

	if err := config.LoadDefaultConfiguration(); err != nil {
		return err
	}
	applyLoggingSeverity(config.LoggingSeverity())

	return database.Open()
}

// CreateRouter wires the service to the configured protocol repository and builds the router.
func CreateRouter() (chi.Router, error) {
	if config.SimulatorEnabled() {
		if err := self.Create(); err != nil {
			aulogging.Logger.NoCtx().Error().WithErr(err).Printf("failed to create self client: %s", err.Error())
			return nil, err
		}
	}

	callbackSrv := callbacksrv.New(database.GetRepository(), config.HealthMessage())
	return server.Create(callbackSrv), nil
}

func setupLogging(useEcsLogging bool) {
	if useEcsLogging {
		auzerolog.SetupJsonLogging("reg-payment-paystack-callback")
	} else {
		auzerolog.SetupPlaintextLogging()
	}
}

func applyLoggingSeverity(severity string) {
	switch strings.ToUpper(severity) {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
