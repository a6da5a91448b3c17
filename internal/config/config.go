package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName            string
	AppEnv             string
	AppPort            string
	DatabaseURL        string
	RedisURL           string
	JWTSecret          string
	TokenTTL           time.Duration
	TeacherEmailDomain string
	LoginMaxAttempts   int
	LoginAttemptWindow time.Duration
	CORSOrigins        string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CAMPUSCARE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "CampusCare API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("teacher.email_domain", "@campuscare.com")
	v.SetDefault("login.max_attempts", 10)
	v.SetDefault("login.attempt_window", "15m")
	v.SetDefault("cors.origins", "*")

	ttl, err := time.ParseDuration(v.GetString("jwt.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	window, err := time.ParseDuration(v.GetString("login.attempt_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid login attempt window: %w", err)
	}

	cfg := Config{
		AppName:            v.GetString("app.name"),
		AppEnv:             v.GetString("app.env"),
		AppPort:            v.GetString("app.port"),
		DatabaseURL:        v.GetString("database.url"),
		RedisURL:           v.GetString("redis.url"),
		JWTSecret:          v.GetString("jwt.secret"),
		TokenTTL:           ttl,
		TeacherEmailDomain: v.GetString("teacher.email_domain"),
		LoginMaxAttempts:   v.GetInt("login.max_attempts"),
		LoginAttemptWindow: window,
		CORSOrigins:        v.GetString("cors.origins"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.LoginMaxAttempts <= 0 {
		cfg.LoginMaxAttempts = 10
	}

	return cfg, nil
}
