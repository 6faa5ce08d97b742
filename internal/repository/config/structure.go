package config

type (
	DatabaseType string

	// Application is the root level of the configuration.
	Application struct {
		Service  ServiceConfig  `yaml:"service"`
		Server   ServerConfig   `yaml:"server"`
		Security SecurityConfig `yaml:"security"`
		Logging  LoggingConfig  `yaml:"logging"`
		Database DatabaseConfig `yaml:"database"`
	}

	ServiceConfig struct {
		Name            string `yaml:"name"`             // the payment provider, shown on the pages
		ClientName      string `yaml:"client_name"`      // the originating client the user returns to
		HealthMessage   string `yaml:"health_message"`   // message field of the health report
		PublicURL       string `yaml:"public_url"`       // base url of this service as seen from the outside, no trailing slash
		EnableSimulator bool   `yaml:"enable_simulator"` // exposes /simulator/{reference}, needs public_url
	}

	ServerConfig struct {
		Address      string `yaml:"address"`
		Port         uint16 `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
		MaxBodyBytes int64  `yaml:"max_body_bytes"`
	}

	SecurityConfig struct {
		Cors CorsConfig `yaml:"cors"`
	}

	CorsConfig struct {
		AllowOrigin string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
	}

	DatabaseConfig struct {
		Use        DatabaseType `yaml:"use"`
		Username   string       `yaml:"username"`
		Password   string       `yaml:"password"`
		Database   string       `yaml:"database"`
		Parameters []string     `yaml:"parameters"`
		MaxEntries int          `yaml:"max_entries"` // inmemory only
	}
)

const (
	Inmemory DatabaseType = "inmemory"
	Mysql    DatabaseType = "mysql"
)
