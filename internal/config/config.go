package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/infrastructure/database"
)

// Store drivers selectable with STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

const defaultDBPassword = "secret"

// Config is populated from environment variables.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database *database.DBConfig
	Redis    RedisConfig
	Log      LogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type StoreConfig struct {
	Driver string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type LogConfig struct {
	Level string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	db, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library Catalog"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", DriverPostgres),
		},
		Database: db,
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "catalog"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Validate rejects unknown drivers and, in production, default secrets.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Port, validation.Required),
		validation.Field(&c.App.Environment, validation.Required,
			validation.In("development", "staging", "production", "test")),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.Store,
		validation.Field(&c.Store.Driver, validation.Required,
			validation.In(DriverPostgres, DriverRedis, DriverMemory).
				Error("must be one of postgres, redis, memory")),
	); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database == nil {
			return fmt.Errorf("database: configuration is missing")
		}
		if err := validation.ValidateStruct(c.Database,
			validation.Field(&c.Database.Host, validation.Required),
			validation.Field(&c.Database.DBName, validation.Required),
			validation.Field(&c.Database.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		); err != nil {
			return fmt.Errorf("database: %w", err)
		}
		if c.IsProduction() && (c.Database.Password == "" || c.Database.Password == defaultDBPassword) {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	case DriverRedis:
		if err := validation.ValidateStruct(&c.Redis,
			validation.Field(&c.Redis.Addr, validation.Required),
			validation.Field(&c.Redis.KeyPrefix, validation.Required),
		); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		if c.IsProduction() && c.Redis.Password == "" {
			return fmt.Errorf("REDIS_PASSWORD must be set in production")
		}
	case DriverMemory:
		if c.IsProduction() {
			return fmt.Errorf("the memory store driver cannot be used in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
