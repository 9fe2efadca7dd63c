package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Store driver names accepted by STORE_DRIVER.
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	StoreDriver string
	DataDir     string
	RedisAddr   string
	DBDSN       string

	CatalogURL  string
	CatalogPath string

	DefaultRefLat float64
	DefaultRefLng float64

	DayOpensAt          string
	DayClosesAt         string
	SlotIntervalMinutes int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Durable booking store driver (default: file)
	cfg.StoreDriver = getEnv("STORE_DRIVER", DriverFile)
	switch cfg.StoreDriver {
	case DriverFile:
		cfg.DataDir = getEnv("DATA_DIR", "data")
	case DriverRedis:
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when STORE_DRIVER=redis")
		}
	case DriverPostgres:
		cfg.DBDSN = os.Getenv("DB_DSN")
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	// Catalog source: a remote URL wins over the local file.
	cfg.CatalogURL = getEnv("CATALOG_URL", "")
	cfg.CatalogPath = getEnv("CATALOG_PATH", "data/studios.json")

	// Default reference point for radius filtering (Dhaka city center)
	var err error
	cfg.DefaultRefLat, err = getEnvAsFloat("DEFAULT_REF_LAT", 23.8103)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_REF_LAT: %w", err)
	}
	cfg.DefaultRefLng, err = getEnvAsFloat("DEFAULT_REF_LNG", 90.4125)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_REF_LNG: %w", err)
	}

	// Bookable day window and slot granularity
	cfg.DayOpensAt = getEnv("DAY_OPENS_AT", "09:00")
	cfg.DayClosesAt = getEnv("DAY_CLOSES_AT", "21:00")
	cfg.SlotIntervalMinutes, err = getEnvAsInt("SLOT_INTERVAL_MINUTES", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_INTERVAL_MINUTES: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsFloat retrieves an environment variable as a float.
// It returns the default value if the variable is not set.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}

	return val, nil
}
