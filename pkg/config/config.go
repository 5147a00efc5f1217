package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// External currency conversion API
	CurrencyAPIBaseURL string
	CurrencyAPIKey     string
	CurrencyAPITimeout time.Duration

	// Requests per minute per client IP
	RateLimit int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CURRENCY_API_BASE_URL", "https://api.unirateapi.com")
	viper.SetDefault("CURRENCY_API_KEY", "")
	viper.SetDefault("CURRENCY_API_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", 100)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.CurrencyAPIBaseURL = viper.GetString("CURRENCY_API_BASE_URL")
	cfg.CurrencyAPIKey = viper.GetString("CURRENCY_API_KEY")
	if cfg.CurrencyAPIKey == "" {
		log.Println("Warning: CURRENCY_API_KEY environment variable not set. Cross-currency settlements will fail.")
	}

	timeoutStr := viper.GetString("CURRENCY_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for CURRENCY_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.CurrencyAPITimeout = timeout

	cfg.RateLimit = viper.GetInt64("RATE_LIMIT")
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 100
		log.Printf("Warning: Invalid value for RATE_LIMIT. Defaulting to %d.\n", cfg.RateLimit)
	}

	return cfg, nil
}
