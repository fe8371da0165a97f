package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Rate ingestion
	RateProviderURL string
	IngestSchedule  string
	BaseCurrency    string

	// Rate list view
	PageSize int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "currency-exchange-app")
	viper.SetDefault("RATE_PROVIDER_URL", "https://api.privatbank.ua/p24api")
	viper.SetDefault("INGEST_SCHEDULE", "@every 60m")
	viper.SetDefault("BASE_CURRENCY", "UAH")
	viper.SetDefault("PAGE_SIZE", 10)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateProviderURL = viper.GetString("RATE_PROVIDER_URL")
	cfg.IngestSchedule = viper.GetString("INGEST_SCHEDULE")
	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")

	cfg.PageSize = viper.GetInt("PAGE_SIZE")
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
		log.Printf("Warning: Invalid PAGE_SIZE. Defaulting to %d.\n", cfg.PageSize)
	}

	return cfg, nil
}
