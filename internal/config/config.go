package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the service reads from the environment.
// Store and AI credentials are optional: missing store credentials put the
// whole system into an unconfigured state, a missing Gemini key only
// degrades the AI-assist features.
type Config struct {
	Port string

	JWTSecret            string
	OperatorEmail        string
	OperatorPasswordHash string

	FirestoreProjectID string

	GeminiAPIKey string
	GeminiModel  string

	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string
}

func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"OPERATOR_EMAIL",
		"OPERATOR_PASSWORD_HASH",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			return nil, fmt.Errorf("missing env var: %s", k)
		}
	}

	cfg := &Config{
		Port:                 os.Getenv("PORT"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		OperatorEmail:        os.Getenv("OPERATOR_EMAIL"),
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		FirestoreProjectID:   os.Getenv("FIRESTORE_PROJECT_ID"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          os.Getenv("GEMINI_MODEL"),
		R2Endpoint:           os.Getenv("R2_ENDPOINT"),
		R2AccessKey:          os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:          os.Getenv("R2_SECRET_KEY"),
		R2Bucket:             os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:      os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// StoreConfigured reports whether Firestore credentials are present.
// Without them no data operation is ever attempted.
func (c *Config) StoreConfigured() bool {
	return c.FirestoreProjectID != ""
}

// AIConfigured reports whether the Gemini assist features can run.
func (c *Config) AIConfigured() bool {
	return c.GeminiAPIKey != "" && c.GeminiModel != ""
}

// R2Configured reports whether menu photo uploads can run.
func (c *Config) R2Configured() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" &&
		c.R2SecretKey != "" && c.R2Bucket != ""
}
