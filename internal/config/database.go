package config

import (
	"fmt"
	"strconv"
	"time"

	"library-catalog/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the PostgreSQL settings. Malformed numbers and
// durations are errors rather than silent defaults.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	ints := map[string]int{}
	for key, def := range map[string]string{
		"DB_PORT":            "5432",
		"DB_MAX_CONNECTIONS": "25",
		"DB_MIN_CONNECTIONS": "5",
		"DB_MAX_RETRIES":     "5",
	} {
		v, err := strconv.Atoi(getEnv(key, def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		ints[key] = v
	}

	durations := map[string]time.Duration{}
	for key, def := range map[string]time.Duration{
		"DB_MAX_CONN_LIFETIME":   5 * time.Minute,
		"DB_MAX_CONN_IDLE_TIME":  time.Minute,
		"DB_HEALTH_CHECK_PERIOD": time.Minute,
		"DB_RETRY_DELAY":         time.Second,
		"DB_CONNECT_TIMEOUT":     10 * time.Second,
	} {
		v, err := getEnvDuration(key, def)
		if err != nil {
			return nil, err
		}
		durations[key] = v
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              ints["DB_PORT"],
		Username:          getEnv("DB_USER", "catalog"),
		Password:          getEnv("DB_PASSWORD", defaultDBPassword),
		DBName:            getEnv("DB_NAME", "library_catalog"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(ints["DB_MAX_CONNECTIONS"]),
		MinConns:          int32(ints["DB_MIN_CONNECTIONS"]),
		MaxConnLifetime:   durations["DB_MAX_CONN_LIFETIME"],
		MaxConnIdleTime:   durations["DB_MAX_CONN_IDLE_TIME"],
		HealthCheckPeriod: durations["DB_HEALTH_CHECK_PERIOD"],
		MaxRetries:        ints["DB_MAX_RETRIES"],
		RetryDelay:        durations["DB_RETRY_DELAY"],
		ConnectTimeout:    durations["DB_CONNECT_TIMEOUT"],
	}, nil
}
