package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends.
const (
	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Market data
	CoinGeckoURL    string
	CoinGeckoAPIKey string
	VSCurrency      string
	RequestTimeout  time.Duration
	PerPage         int
	TrendingLimit   int

	// Refresh
	RefreshInterval     time.Duration
	LivePortfolioPrices bool

	// Auth
	AuthURL          string
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Session
	SessionStore string
	RedisURL     string

	// Add-item flow
	SubmitDelay   time.Duration
	RedirectDelay time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		CoinGeckoURL:    strings.TrimRight(getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"), "/"),
		CoinGeckoAPIKey: os.Getenv("COINGECKO_API_KEY"),
		VSCurrency:      strings.ToLower(getEnv("VS_CURRENCY", "usd")),

		AuthURL:   strings.TrimRight(getEnv("AUTH_URL", "https://auth.example.com/api"), "/"),
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		SessionStore: strings.ToLower(getEnv("SESSION_STORE", SessionStoreDatabase)),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}

	var err error
	if config.RequestTimeout, err = parseDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if config.RefreshInterval, err = parseDuration("REFRESH_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	if config.SubmitDelay, err = parseDuration("SUBMIT_DELAY", time.Second); err != nil {
		return nil, err
	}
	if config.RedirectDelay, err = parseDuration("REDIRECT_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if config.PerPage, err = parseInt("PER_PAGE", 20, 1, 250); err != nil {
		return nil, err
	}
	if config.TrendingLimit, err = parseInt("TRENDING_LIMIT", 5, 1, 50); err != nil {
		return nil, err
	}
	if config.LivePortfolioPrices, err = parseBool(os.Getenv("LIVE_PORTFOLIO_PRICES"), false); err != nil {
		return nil, fmt.Errorf("invalid LIVE_PORTFOLIO_PRICES value: %w", err)
	}

	switch config.SessionStore {
	case SessionStoreDatabase, SessionStoreRedis:
	default:
		return nil, fmt.Errorf("invalid SESSION_STORE %q: must be %s or %s", config.SessionStore, SessionStoreDatabase, SessionStoreRedis)
	}

	if config.JWTExpirationDur, err = parseDuration("JWT_EXPIRES_IN", 24*time.Hour); err != nil {
		return nil, err
	}
	if config.JWTExpirationDur == 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be greater than 0")
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the application configuration. Used by tests and by commands
// that build their configuration programmatically.
func Set(cfg *Config) {
	appConfig = cfg
}

// RefreshSchedule returns the cron spec for the periodic refresh task.
func (c *Config) RefreshSchedule() string {
	return "@every " + c.RefreshInterval.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %v", key, d)
	}
	return d, nil
}

func parseInt(key string, defaultValue, minValue, maxValue int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if n < minValue || n > maxValue {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", key, minValue, maxValue, n)
	}
	return n, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}
