package config

import (
	"fmt"
	"net/url"
	"strings"
)

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}

func checkLength(errs url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func validateServerConfiguration(errs url.Values, c ServerConfig) {
	checkIntValueRange(errs, 1024, 65535, "server.port", int(c.Port))
	checkIntValueRange(errs, 1, 300, "server.read_timeout_seconds", c.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "server.write_timeout_seconds", c.WriteTimeout)
	checkIntValueRange(errs, 1, 600, "server.idle_timeout_seconds", c.IdleTimeout)
}

func validateServiceConfiguration(errs url.Values, c ServiceConfig) {
	checkLength(errs, 1, 64, "service.name", c.Name)
	checkLength(errs, 1, 64, "service.client_name", c.ClientName)
	checkLength(errs, 1, 256, "service.health_message", c.HealthMessage)
	if c.PublicURL != "" && !validBaseUrl(c.PublicURL) {
		errs.Add("service.public_url", "public url must be empty or start with http:// or https:// and may not end in a /")
	}
	if c.EnableSimulator && c.PublicURL == "" {
		errs.Add("service.enable_simulator", "the simulator needs service.public_url to call its own webhook")
	}
}

func validateSecurityConfiguration(errs url.Values, c SecurityConfig) {
	checkLength(errs, 1, 256, "security.cors.allow_origin", c.Cors.AllowOrigin)
}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if !contains(allowedSeverities, c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
}

func validateDatabaseConfiguration(errs url.Values, c DatabaseConfig) {
	switch c.Use {
	case Inmemory:
		checkIntValueRange(errs, 1, 100000, "database.max_entries", c.MaxEntries)
	case Mysql:
		checkLength(errs, 1, 256, "database.username", c.Username)
		checkLength(errs, 1, 256, "database.password", c.Password)
		checkLength(errs, 1, 256, "database.database", c.Database)
	default:
		errs.Add("database.use", "must be one of mysql, inmemory")
	}
}

func validBaseUrl(value string) bool {
	return (strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")) && !strings.HasSuffix(value, "/")
}

func contains(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
