package config

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// APIKey guards the admin routes. Admin routes are disabled when empty.
	APIKey string

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	CatalogPath     string
	StartingBalance *big.Int
	PriceCacheSize  int
	SellPriceRatio  float64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		CatalogPath:    getEnv(EnvCatalogPath, ConfigPathCatalog),
		PriceCacheSize: getEnvAsInt(EnvPriceCacheSize, DefaultPriceCacheSize),
		SellPriceRatio: getEnvAsFloat(EnvSellPriceRatio, DefaultSellPriceRatio),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	balance, ok := new(big.Int).SetString(getEnv(EnvStartingBalance, DefaultStartingBalance), 10)
	if !ok || balance.Sign() < 0 {
		return nil, fmt.Errorf("invalid STARTING_BALANCE value: must be a non-negative integer")
	}
	cfg.StartingBalance = balance

	if cfg.PriceCacheSize <= 0 {
		return nil, fmt.Errorf("invalid PRICE_CACHE_SIZE value: must be positive, got %d", cfg.PriceCacheSize)
	}
	if cfg.SellPriceRatio < 0 || cfg.SellPriceRatio > 1 {
		return nil, fmt.Errorf("invalid SELL_PRICE_RATIO value: must be between 0 and 1, got %v", cfg.SellPriceRatio)
	}

	return cfg, nil
}

// AdminEnabled reports whether admin routes should be mounted
func (c *Config) AdminEnabled() bool {
	return c.APIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on error
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat parses a float environment variable, falling back on error
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
