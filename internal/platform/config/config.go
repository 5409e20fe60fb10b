package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the server.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Firebase / Google Cloud
	ProjectID                    string `env:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Web API key used for password sign-in against the Identity Toolkit API.
	WebAPIKey string `env:"FIREBASE_WEB_API_KEY"`

	// Bucket holding avatar objects.
	AvatarBucket string `env:"AVATAR_BUCKET"`

	// Lifetime of signed avatar download URLs, in seconds.
	SignedURLTTL int `env:"SIGNED_URL_TTL_SECONDS" envDefault:"600"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(c *Config) error {
	if c.ProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.WebAPIKey == "" {
		return errors.New("FIREBASE_WEB_API_KEY is required")
	}
	if c.AvatarBucket == "" {
		return errors.New("AVATAR_BUCKET is required")
	}
	return nil
}
