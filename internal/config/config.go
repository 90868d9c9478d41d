package config

import (
	"github.com/spf13/viper"
)

// Config holds every environment-derived setting the application needs.
// It is built once in main and passed explicitly into constructors so
// nothing reads ambient global state.
type Config struct {
	AppPort     string
	DatabaseDSN string
	JWTSecret   string
	RabbitMQURL string
	Environment string // "development", "production" or "test"
}

// Load reads configuration from environment variables via Viper,
// falling back to development defaults.
func Load() *Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=kasuwa port=5432 sslmode=disable")
	v.SetDefault("JWT_SECRET", "dev_jwt_secret")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("APP_ENV", "development")
	v.AutomaticEnv()

	return &Config{
		AppPort:     v.GetString("APP_PORT"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		Environment: v.GetString("APP_ENV"),
	}
}

// IsDevelopment reports whether the app runs with development settings,
// which controls whether error responses carry stack traces.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
