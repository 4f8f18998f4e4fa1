package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Selection store backends.
const (
	SelectionStoreMemory   = "memory"
	SelectionStorePostgres = "postgres"
	SelectionStoreRedis    = "redis"
)

type Config struct {
	Port     string
	LogLevel string

	CardAPIURL     string
	CardAPIKey     string
	CardAPITimeout time.Duration

	HistoryPageSize   int
	HistorySessionTTL time.Duration
	DefaultCardID     string
	DisplayLocation   *time.Location

	SelectionStore string
	RedisURL       string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	OperatorWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:     "9446",
		LogLevel: "info",

		CardAPIURL:     "http://localhost:3000",
		CardAPITimeout: 10 * time.Second,

		HistoryPageSize:   10,
		HistorySessionTTL: 30 * time.Minute,
		DefaultCardID:     "1",
		DisplayLocation:   time.Local,

		SelectionStore: SelectionStoreMemory,
		RedisURL:       "redis://localhost:6379/0",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		OperatorWorkers: 1,
	}

	overrideString(&env.Port, "PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")
	overrideString(&env.CardAPIURL, "CARD_API_URL")
	overrideString(&env.CardAPIKey, "CARD_API_KEY")
	overrideString(&env.DefaultCardID, "DEFAULT_CARD_ID")
	overrideString(&env.SelectionStore, "SELECTION_STORE")
	overrideString(&env.RedisURL, "REDIS_URL")
	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	timeoutSeconds, err := envInt("CARD_API_TIMEOUT_SECONDS", int(env.CardAPITimeout/time.Second))
	if err != nil {
		return nil, err
	}
	env.CardAPITimeout = time.Duration(timeoutSeconds) * time.Second

	if env.HistoryPageSize, err = envInt("HISTORY_PAGE_SIZE", env.HistoryPageSize); err != nil {
		return nil, err
	}
	if env.HistoryPageSize < 1 {
		return nil, fmt.Errorf("HISTORY_PAGE_SIZE must be positive, got %d", env.HistoryPageSize)
	}

	ttlMinutes, err := envInt("HISTORY_SESSION_IDLE_MINUTES", int(env.HistorySessionTTL/time.Minute))
	if err != nil {
		return nil, err
	}
	env.HistorySessionTTL = time.Duration(ttlMinutes) * time.Minute

	if env.OperatorWorkers, err = envInt("OPERATOR_WORKERS", env.OperatorWorkers); err != nil {
		return nil, err
	}

	if tz := os.Getenv("DISPLAY_TIMEZONE"); len(tz) != 0 {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
		}
		env.DisplayLocation = loc
	}

	env.SelectionStore = strings.ToLower(env.SelectionStore)
	switch env.SelectionStore {
	case SelectionStoreMemory, SelectionStorePostgres, SelectionStoreRedis:
	default:
		return nil, fmt.Errorf("SELECTION_STORE must be one of memory, postgres, redis, got %q", env.SelectionStore)
	}

	return &env, nil
}

// PostgresURL builds the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func envInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
