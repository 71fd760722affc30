package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultPort                = "8080"
	defaultReportingCurrency   = "UZS"
	defaultExchangeRateAPIURL  = "https://api.exchangerate.host/latest"
	defaultExchangeRateTimeout = 10 * time.Second
	defaultFallbackUSDRate     = "12500"
	defaultRateLimit           = "300-M"
	defaultJWTSecret           = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	JWTSecret     string

	// Reporting currency and exchange rate resolution
	ReportingCurrency   string
	ExchangeRateAPIKey  string
	ExchangeRateAPIURL  string
	ExchangeRateTimeout time.Duration
	FallbackUSDRate     decimal.Decimal

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("REPORTING_CURRENCY", defaultReportingCurrency)
	v.SetDefault("EXCHANGE_RATE_API_KEY", "")
	v.SetDefault("EXCHANGE_RATE_API_URL", defaultExchangeRateAPIURL)
	v.SetDefault("EXCHANGE_RATE_TIMEOUT", defaultExchangeRateTimeout.String())
	v.SetDefault("FALLBACK_USD_RATE", defaultFallbackUSDRate)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:      v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		ExchangeRateAPIKey: strings.TrimSpace(v.GetString("EXCHANGE_RATE_API_KEY")),
		ExchangeRateAPIURL: v.GetString("EXCHANGE_RATE_API_URL"),
		RateLimit:          v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.ReportingCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("REPORTING_CURRENCY")))
	if len(cfg.ReportingCurrency) != 3 {
		log.Printf("Warning: Invalid value for REPORTING_CURRENCY ('%s'). Defaulting to %s.\n", cfg.ReportingCurrency, defaultReportingCurrency)
		cfg.ReportingCurrency = defaultReportingCurrency
	}

	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Live exchange rates are disabled; manual or fallback rate will be used.")
	}

	timeoutStr := v.GetString("EXCHANGE_RATE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultExchangeRateTimeout
		log.Printf("Warning: Invalid value for EXCHANGE_RATE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ExchangeRateTimeout = timeout

	fallbackStr := v.GetString("FALLBACK_USD_RATE")
	fallback, err := decimal.NewFromString(strings.TrimSpace(fallbackStr))
	if err != nil || !fallback.IsPositive() {
		fallback = decimal.RequireFromString(defaultFallbackUSDRate)
		log.Printf("Warning: Invalid value for FALLBACK_USD_RATE ('%s'). Defaulting to %s.\n", fallbackStr, fallback)
	}
	cfg.FallbackUSDRate = fallback

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
