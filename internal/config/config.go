package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/farmverse/farmverse/internal/domain"
)

// Backend selects which store implementation backs the engine.
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	APIKey      string // API key for authentication

	// TrustedProxies are the only peers whose X-Forwarded-For is believed.
	TrustedProxies []string

	Backend string // "postgres" or "firestore"

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	FirebaseProjectID       string
	FirebaseCredentialsFile string

	// Scheduler cadence. Reconciliation must stay strictly more frequent
	// than market ticks; Validate enforces it.
	GrowthReconcileInterval time.Duration
	MarketTickInterval      time.Duration
	DailyRewardInterval     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "text"),
		LogDir:                  getEnv("LOG_DIR", "logs"),
		Environment:             getEnv("ENVIRONMENT", "dev"),
		Backend:                 getEnv("BACKEND", BackendPostgres),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              getEnv("DB_PASSWORD", "postgres"),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBName:                  getEnv("DB_NAME", "farmverse"),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		APIKey:                  getEnv("API_KEY", ""),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.GrowthReconcileInterval, err = getEnvDuration("GROWTH_RECONCILE_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.MarketTickInterval, err = getEnvDuration("MARKET_TICK_INTERVAL", 6*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.DailyRewardInterval, err = getEnvDuration("DAILY_REWARD_INTERVAL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Backend != BackendPostgres && c.Backend != BackendFirestore {
		return fmt.Errorf("BACKEND must be %q or %q, got %q", BackendPostgres, BackendFirestore, c.Backend)
	}
	if c.Backend == BackendFirestore && c.FirebaseProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID must be set when BACKEND=firestore")
	}
	if c.GrowthReconcileInterval <= 0 || c.MarketTickInterval <= 0 || c.DailyRewardInterval <= 0 {
		return fmt.Errorf("scheduler intervals must be positive")
	}
	if c.GrowthReconcileInterval >= c.MarketTickInterval {
		return fmt.Errorf("GROWTH_RECONCILE_INTERVAL (%s) must be shorter than MARKET_TICK_INTERVAL (%s)",
			c.GrowthReconcileInterval, c.MarketTickInterval)
	}
	return nil
}

// Catalog returns the crop catalog for the configured environment.
// Dev uses minute-scale growth durations so crops mature while testing.
func (c *Config) Catalog() domain.Catalog {
	if c.Environment == "prod" {
		return domain.DefaultCatalog()
	}
	return domain.DevCatalog()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns a default
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
