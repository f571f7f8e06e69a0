package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Ledger defaults
	DefaultCommodity string
	DefaultUnit      string
	DailyTarget      decimal.Decimal

	// Nightly carry-over
	CarryOverEnabled  bool
	CarryOverSchedule string

	// Summary cache; an empty RedisAddr disables it
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SummaryCacheTTL time.Duration

	RateLimit          string
	CORSAllowedOrigins []string

	InitRetryAttempts int
	InitRetryDelay    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("DEFAULT_COMMODITY", "Tomatoes")
	viper.SetDefault("DEFAULT_UNIT", "trays")
	viper.SetDefault("DAILY_TARGET", "50")
	viper.SetDefault("CARRY_OVER_ENABLED", true)
	viper.SetDefault("CARRY_OVER_SCHEDULE", "5 0 * * *")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SUMMARY_CACHE_TTL", "5m")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("INIT_RETRY_ATTEMPTS", 3)
	viper.SetDefault("INIT_RETRY_DELAY", "2s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using the in-memory store; data will not survive a restart.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DefaultCommodity = strings.TrimSpace(viper.GetString("DEFAULT_COMMODITY"))
	if cfg.DefaultCommodity == "" {
		cfg.DefaultCommodity = "Tomatoes"
	}
	cfg.DefaultUnit = strings.TrimSpace(viper.GetString("DEFAULT_UNIT"))
	if cfg.DefaultUnit == "" {
		cfg.DefaultUnit = "trays"
	}

	dailyTargetStr := viper.GetString("DAILY_TARGET")
	dailyTarget, err := decimal.NewFromString(dailyTargetStr)
	if err != nil || dailyTarget.IsNegative() {
		dailyTarget = decimal.NewFromInt(50)
		log.Printf("Warning: Invalid value for DAILY_TARGET ('%s'). Defaulting to %s.\n", dailyTargetStr, dailyTarget)
	}
	cfg.DailyTarget = dailyTarget

	cfg.CarryOverEnabled = viper.GetBool("CARRY_OVER_ENABLED")
	cfg.CarryOverSchedule = viper.GetString("CARRY_OVER_SCHEDULE")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.SummaryCacheTTL = durationOr("SUMMARY_CACHE_TTL", 5*time.Minute)

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.InitRetryAttempts = viper.GetInt("INIT_RETRY_ATTEMPTS")
	if cfg.InitRetryAttempts < 1 {
		log.Printf("Warning: INIT_RETRY_ATTEMPTS must be at least 1 ('%d'). Defaulting to 1.\n", cfg.InitRetryAttempts)
		cfg.InitRetryAttempts = 1
	}
	cfg.InitRetryDelay = durationOr("INIT_RETRY_DELAY", 2*time.Second)

	return cfg, nil
}

// AllowsAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowsAllOrigins() bool {
	return len(c.CORSAllowedOrigins) == 0 || (len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*")
}

func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}
