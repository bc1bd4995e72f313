package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// This is a single-shop deployment: one process, one embedded database file,
// one operator account.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database (embedded SQLite file)
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Auth — the hardcoded operator gate. Credentials live in config, not in
	// a user table; a successful login issues a short-lived JWT.
	AdminUsername      string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword      string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Business
	// NearExpiryDays is the lookahead window for the near-expiry review list.
	NearExpiryDays int `mapstructure:"NEAR_EXPIRY_DAYS"`
	// EnforceStock makes createBill reject items that exceed derived on-hand
	// stock. Disabling restores the legacy trust boundary where the UI caps
	// selectable quantities itself.
	EnforceStock bool `mapstructure:"ENFORCE_STOCK"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "inventory.db")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("NEAR_EXPIRY_DAYS", 30)
	viper.SetDefault("ENFORCE_STOCK", true)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
