// configuration management using a yaml configuration file
// You must have called LoadConfiguration() or otherwise set up the configuration before you can use these.
package config

import (
	"fmt"
	"strings"
	"time"
)

func UseEcsLogging() bool {
	return ecsLogging
}

func ServerAddr() string {
	c := Configuration()
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

func ServerReadTimeout() time.Duration {
	return time.Second * time.Duration(Configuration().Server.ReadTimeout)
}

func ServerWriteTimeout() time.Duration {
	return time.Second * time.Duration(Configuration().Server.WriteTimeout)
}

func ServerIdleTimeout() time.Duration {
	return time.Second * time.Duration(Configuration().Server.IdleTimeout)
}

func MaxBodyBytes() int64 {
	return Configuration().Server.MaxBodyBytes
}

func ServiceName() string {
	return Configuration().Service.Name
}

func ClientName() string {
	return Configuration().Service.ClientName
}

func HealthMessage() string {
	return Configuration().Service.HealthMessage
}

func ServicePublicURL() string {
	return Configuration().Service.PublicURL
}

func SimulatorEnabled() bool {
	return Configuration().Service.EnableSimulator
}

func CorsAllowOrigin() string {
	return Configuration().Security.Cors.AllowOrigin
}

func DatabaseUse() DatabaseType {
	return Configuration().Database.Use
}

func DatabaseMysqlConnectString() string {
	c := Configuration().Database
	return c.Username + ":" + c.Password + "@" +
		c.Database + "?" + strings.Join(c.Parameters, "&")
}

func DatabaseMaxEntries() int {
	return Configuration().Database.MaxEntries
}

func MigrateDatabase() bool {
	return dbMigrate
}

func LoggingSeverity() string {
	return Configuration().Logging.Severity
}
