package database

import (
	"errors"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/config"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/dbrepo"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/inmemorydb"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/mysqldb"
)

var (
	ActiveRepository dbrepo.Repository
)

func SetRepository(repository dbrepo.Repository) {
	ActiveRepository = repository
}

func GetRepository() dbrepo.Repository {
	if ActiveRepository == nil {
		aulogging.Logger.NoCtx().Error().Print("You must Open() the database before using it. This is an error in your implementation.")
		panic("You must Open() the database before using it. This is an error in your implementation.")
	}
	return ActiveRepository
}

// Open selects and opens the protocol repository named in the configuration.
func Open() error {
	var r dbrepo.Repository
	switch config.DatabaseUse() {
	case config.Mysql:
		aulogging.Logger.NoCtx().Info().Print("Opening mysql database...")
		r = mysqldb.Create(config.DatabaseMysqlConnectString())
	case config.Inmemory:
		aulogging.Logger.NoCtx().Info().Print("Opening inmemory database (protocol is lost on restart)...")
		r = inmemorydb.Create(config.DatabaseMaxEntries())
	default:
		return errors.New("invalid database.use, must be one of mysql, inmemory")
	}
	if err := r.Open(); err != nil {
		return err
	}
	SetRepository(r)
	return nil
}

func Close() {
	aulogging.Logger.NoCtx().Info().Print("Closing database...")
	GetRepository().Close()
	SetRepository(nil)
}

func MigrateIfSupportedAndConfigured() error {
	if config.MigrateDatabase() {
		return GetRepository().Migrate()
	}
	aulogging.Logger.NoCtx().Info().Print("Not migrating database. Provide -migrate-database command line switch to enable.")
	return nil
}
