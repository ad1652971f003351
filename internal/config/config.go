package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Department DepartmentClientConfig
	Logging    LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	MaxInFlight  int64         `envconfig:"MAX_IN_FLIGHT" default:"64"`
	QueueTimeout time.Duration `envconfig:"QUEUE_TIMEOUT" default:"2s"`
	SwaggerHost  string        `envconfig:"SWAGGER_HOST"`
}

// DatabaseConfig holds MySQL configuration.
type DatabaseConfig struct {
	DSN         string `envconfig:"MYSQL_DSN" default:"user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds cache configuration. An empty address disables caching.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

// DepartmentClientConfig points the user service at the department service.
type DepartmentClientConfig struct {
	BaseURL string        `envconfig:"DEPARTMENT_SERVICE_URL" default:"http://localhost:8081"`
	Timeout time.Duration `envconfig:"DEPARTMENT_SERVICE_TIMEOUT" default:"5s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load builds Config from an optional .env file and the environment.
// defaultPort is used when SERVER_PORT is not set, so each binary keeps its own port.
func Load(defaultPort string) (*Config, error) {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.MaxInFlight <= 0 {
		return nil, fmt.Errorf("load config: MAX_IN_FLIGHT must be positive, got %d", cfg.Server.MaxInFlight)
	}
	if cfg.Department.Timeout <= 0 {
		return nil, fmt.Errorf("load config: DEPARTMENT_SERVICE_TIMEOUT must be positive, got %s", cfg.Department.Timeout)
	}
	return &cfg, nil
}
