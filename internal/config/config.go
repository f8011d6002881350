package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds every runtime setting of the server.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":3000"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	DB    DBConfig
	Redis RedisConfig
	Otel  OtelConfig

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	level slog.Level
}

// DBConfig describes the relational database connection.
type DBConfig struct {
	Driver       string `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN          string `env:"DB_DSN" envDefault:"./student_tracker.db"`
	InitSchema   bool   `env:"DB_INIT_SCHEMA" envDefault:"true"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
}

// RedisConfig describes the optional grade listing cache.
// An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}

// OtelConfig controls telemetry export.
type OtelConfig struct {
	ServiceName  string `env:"SERVICE_NAME" envDefault:"student-tracker"`
	Endpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	StdoutTraces bool   `env:"OTEL_STDOUT_TRACES" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return errors.New("DB_DSN must not be empty")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		return errors.New("CACHE_TTL must be positive when REDIS_ADDR is set")
	}
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	c.level = level
	return nil
}

// Level is the slog level parsed from LOG_LEVEL by Validate.
func (c *Config) Level() slog.Level {
	return c.level
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
