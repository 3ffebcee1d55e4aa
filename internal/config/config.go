package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Valuation ValuationConfig
	Snapshot  SnapshotConfig
	Broker    BrokerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ValuationConfig holds the canonical-currency settings of the deployment.
// All cross-asset aggregates are expressed in CanonicalCurrency.
//
// FallbackUSDRate is the one sanctioned escape hatch for missing FX rates:
// when set (> 0), a USD holding with no stored rate converts at this hard
// rate instead of failing the request. Unset means missing rates fail.
type ValuationConfig struct {
	CanonicalCurrency string
	FallbackUSDRate   float64
	// Benchmarks maps benchmark names to their market data symbols.
	Benchmarks map[string]string
}

// SnapshotConfig holds the daily valuation snapshot job settings.
type SnapshotConfig struct {
	// Schedule is a cron expression; empty disables the scheduled job
	// (the manual trigger endpoint keeps working).
	Schedule string
}

// BrokerConfig holds linked-brokerage API settings. TokenKey is a base64
// fernet key used to encrypt the cached access token at rest; leaving the
// app key empty disables the linked-holdings source entirely.
type BrokerConfig struct {
	BaseURL       string
	AppKey        string
	AppSecret     string
	AccountNumber string
	TokenPath     string
	TokenKey      string
}

// defaultBenchmarks are the index symbols tracked out of the box. The set is
// open: names are only labels carried through to the returns API.
func defaultBenchmarks() map[string]string {
	return map[string]string{
		"kospi":  "^KS11",
		"sp500":  "^GSPC",
		"nasdaq": "^IXIC",
	}
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	fallbackRate := 0.0
	if raw := os.Getenv("FX_FALLBACK_USD_RATE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FX_FALLBACK_USD_RATE %q: %w", raw, err)
		}
		fallbackRate = parsed
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/asset_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Valuation: ValuationConfig{
			CanonicalCurrency: getEnv("CANONICAL_CURRENCY", "KRW"),
			FallbackUSDRate:   fallbackRate,
			Benchmarks:        defaultBenchmarks(),
		},
		Snapshot: SnapshotConfig{
			// Weekdays at 16:10, after the domestic market close.
			Schedule: getEnv("SNAPSHOT_SCHEDULE", "10 16 * * 1-5"),
		},
		Broker: BrokerConfig{
			BaseURL:       getEnv("BROKER_BASE_URL", "https://openapi.koreainvestment.com:9443"),
			AppKey:        os.Getenv("BROKER_APP_KEY"),
			AppSecret:     os.Getenv("BROKER_APP_SECRET"),
			AccountNumber: os.Getenv("BROKER_ACCOUNT_NO"),
			TokenPath:     getEnv("BROKER_TOKEN_PATH", "./data/broker_token.enc"),
			TokenKey:      os.Getenv("BROKER_TOKEN_KEY"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
