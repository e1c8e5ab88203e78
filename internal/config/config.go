// Package config loads process-wide configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the server needs. It is loaded once at
// startup and passed by value into the components that need it.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MongoURI is the connection string of the document store.
	MongoURI string
	// MongoDB is the database name.
	MongoDB string

	// JWTSecret signs both access and recovery tokens.
	JWTSecret string
	// TokenTTL is the lifetime of access and recovery tokens.
	TokenTTL time.Duration

	// GoogleClientID is the expected audience of Google ID tokens.
	GoogleClientID string

	// SendGridAPIKey enables transactional email when non-empty.
	SendGridAPIKey string
	// EmailFrom is the sender address of transactional email.
	EmailFrom string
	// FrontendOrigins is the comma-separated list of allowed CORS
	// origins. Reset links point at the first one.
	FrontendOrigins string
}

// Origins returns the allowed CORS origins.
func (c Config) Origins() []string {
	return strings.Split(c.FrontendOrigins, ",")
}

// ResetBaseURL returns the origin used to build password reset links.
func (c Config) ResetBaseURL() string {
	return c.Origins()[0]
}

// Load reads configuration from environment variables, applying
// defaults for everything that is safe to default.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "teamcall")
	v.SetDefault("TOKEN_TTL_SECONDS", 3600)
	v.SetDefault("EMAIL_FROM", "noreply@teamcall.com")
	v.SetDefault("ORIGIN", "http://localhost:5173")

	cfg := Config{
		Addr:            ":" + v.GetString("PORT"),
		MongoURI:        v.GetString("MONGO_URI"),
		MongoDB:         v.GetString("MONGO_DB"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        time.Duration(v.GetInt("TOKEN_TTL_SECONDS")) * time.Second,
		GoogleClientID:  v.GetString("GOOGLE_CLIENT_ID"),
		SendGridAPIKey:  v.GetString("SENDGRID_API_KEY"),
		EmailFrom:       v.GetString("EMAIL_FROM"),
		FrontendOrigins: v.GetString("ORIGIN"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}
