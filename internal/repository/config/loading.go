package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	configurationData     *Application
	configurationFilename string
	dotEnvFilename        string
	ecsLogging            bool
	dbMigrate             bool
)

var ErrorConfigFile = errors.New("failed to read or parse configuration file. Aborting")

func init() {
	configurationData = defaultConfiguration()

	flag.StringVar(&configurationFilename, "config", "", "config file path, defaults are used if omitted")
	flag.StringVar(&dotEnvFilename, "env-file", ".env", "optional file of environment variable overrides")
	flag.BoolVar(&ecsLogging, "ecs-json-logging", false, "switch to structured json logging")
	flag.BoolVar(&dbMigrate, "migrate-database", false, "migrate database on startup")
}

// ParseCommandLineFlags is exposed separately so you can skip it for tests
func ParseCommandLineFlags() {
	flag.Parse()
}

func defaultConfiguration() *Application {
	c := &Application{}
	setConfigurationDefaults(c)
	return c
}

func setConfigurationDefaults(c *Application) {
	if c.Service.Name == "" {
		c.Service.Name = "Paystack"
	}
	if c.Service.ClientName == "" {
		c.Service.ClientName = "SwiftMsg"
	}
	if c.Service.HealthMessage == "" {
		c.Service.HealthMessage = fmt.Sprintf("%s callback API is running", c.Service.Name)
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Security.Cors.AllowOrigin == "" {
		c.Security.Cors.AllowOrigin = "*"
	}
	if c.Logging.Severity == "" {
		c.Logging.Severity = "INFO"
	}
	if c.Database.Use == "" {
		c.Database.Use = Inmemory
	}
	if c.Database.MaxEntries <= 0 {
		c.Database.MaxEntries = 1000
	}
}

// environment variables that override the configuration file, mostly for serverless deployments
func applyEnvironmentOverrides(c *Application) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			c.Server.Port = uint16(port)
		}
	}
	if v := os.Getenv("PUBLIC_URL"); v != "" {
		c.Service.PublicURL = v
	}
	if v := os.Getenv("CLIENT_NAME"); v != "" {
		c.Service.ClientName = v
	}
	if v := os.Getenv("LOG_SEVERITY"); v != "" {
		c.Logging.Severity = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

func parseAndOverwriteConfig(yamlFile []byte, logPrintf func(format string, v ...interface{})) error {
	newConfigurationData := &Application{}
	err := yaml.UnmarshalStrict(yamlFile, newConfigurationData)
	if err != nil {
		logPrintf("failed to parse configuration file: %v", err)
		return err
	}

	return validateAndOverwriteConfig(newConfigurationData, logPrintf)
}

func validateAndOverwriteConfig(newConfigurationData *Application, logPrintf func(format string, v ...interface{})) error {
	setConfigurationDefaults(newConfigurationData)
	applyEnvironmentOverrides(newConfigurationData)
	newConfigurationData.Logging.Severity = strings.ToUpper(newConfigurationData.Logging.Severity)

	errs := url.Values{}
	validateServerConfiguration(errs, newConfigurationData.Server)
	validateServiceConfiguration(errs, newConfigurationData.Service)
	validateSecurityConfiguration(errs, newConfigurationData.Security)
	validateLoggingConfiguration(errs, newConfigurationData.Logging)
	validateDatabaseConfiguration(errs, newConfigurationData.Database)

	if len(errs) != 0 {
		var keys []string
		for key := range errs {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, val := range errs[k] {
				logPrintf("configuration error: %s: %s", k, val)
			}
		}
		return errors.New("configuration validation error")
	}

	configurationData = newConfigurationData
	return nil
}

func loadDotEnv() {
	if dotEnvFilename == "" {
		return
	}
	if err := godotenv.Load(dotEnvFilename); err == nil {
		aulogging.Logger.NoCtx().Info().Printf("loaded environment overrides from %s", dotEnvFilename)
	}
}

func loadConfiguration() error {
	loadDotEnv()

	if configurationFilename == "" {
		aulogging.Logger.NoCtx().Info().Print("no configuration file given, using defaults and environment overrides")
		return validateAndOverwriteConfig(&Application{}, aulogging.Logger.NoCtx().Error().Printf)
	}

	yamlFile, err := os.ReadFile(configurationFilename)
	if err != nil {
		aulogging.Logger.NoCtx().Error().Printf("failed to load configuration file '%s': %v", configurationFilename, err)
		return err
	}
	return parseAndOverwriteConfig(yamlFile, aulogging.Logger.NoCtx().Error().Printf)
}

// LoadConfiguration reads the configuration file named by the -config flag, or falls back
// to defaults plus environment overrides if none was given.
func LoadConfiguration() error {
	if err := loadConfiguration(); err != nil {
		return ErrorConfigFile
	}
	return nil
}

// LoadDefaultConfiguration sets up defaults plus environment overrides without touching
// the command line. Used by the serverless entry point.
func LoadDefaultConfiguration() error {
	dotEnvFilename = ""
	return validateAndOverwriteConfig(&Application{}, aulogging.Logger.NoCtx().Error().Printf)
}

// LoadTestingConfigurationFromPathOrAbort is for tests to set a hardcoded yaml configuration
func LoadTestingConfigurationFromPathOrAbort(configFilenameForTests string) {
	configurationFilename = configFilenameForTests
	dotEnvFilename = ""
	if err := loadConfiguration(); err != nil {
		aulogging.Logger.NoCtx().Error().Printf("failed to load testing configuration from %s: %v", configFilenameForTests, err)
		os.Exit(1)
	}
}

func Configuration() *Application {
	return configurationData
}
