package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all environment-supplied settings.
type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
	GinMode       string
	JWTSecret     string
	AdminUser     string
	AdminPassword string
}

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. Tokens signed
// with a guessable default would be forgeable, so startup must fail instead.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required")

// Load reads configuration from environment variables with sane defaults
// for local development. JWT_SECRET has no default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "taskuser")
	v.SetDefault("DB_PASSWORD", "taskpassword")
	v.SetDefault("DB_NAME", "task_tracker")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_USER", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:      v.GetString("DB_DRIVER"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		ServerPort:    v.GetString("SERVER_PORT"),
		GinMode:       v.GetString("GIN_MODE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		AdminUser:     v.GetString("ADMIN_USER"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}
