package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppPort            string `mapstructure:"APP_PORT"`
	DataDir            string `mapstructure:"DATA_DIR"`
	PublicDir          string `mapstructure:"PUBLIC_DIR"`
	StoreBackend       string `mapstructure:"STORE_BACKEND"`
	DatabaseDSN        string `mapstructure:"DATABASE_DSN"`
	StrictReads        bool   `mapstructure:"STORE_STRICT_READS"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RabbitMQURL        string `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange   string `mapstructure:"RABBITMQ_EXCHANGE"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFormat          string `mapstructure:"LOG_FORMAT"`
	OrderDateLayout    string `mapstructure:"ORDER_DATE_LAYOUT"`
}

var keys = []string{
	"APP_PORT", "DATA_DIR", "PUBLIC_DIR", "STORE_BACKEND", "DATABASE_DSN",
	"STORE_STRICT_READS", "CORS_ALLOWED_ORIGINS", "RABBITMQ_URL",
	"RABBITMQ_EXCHANGE", "LOG_LEVEL", "LOG_FORMAT", "ORDER_DATE_LAYOUT",
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("PUBLIC_DIR", "./public")
	v.SetDefault("STORE_BACKEND", "json")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("STORE_STRICT_READS", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "cylaba.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ORDER_DATE_LAYOUT", "1/2/2006")
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "json", "sqlite", "memory":
	case "postgres":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (supported: json, sqlite, postgres, memory)", c.StoreBackend)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.OrderDateLayout == "" {
		return fmt.Errorf("ORDER_DATE_LAYOUT must not be empty")
	}
	return nil
}
