package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	GoogleIssuer     string `env:"GOOGLE_ISSUER" envDefault:"https://accounts.google.com"`
	ServerClientID   string `env:"GOOGLE_SERVER_CLIENT_ID,required"`
	ClientSecret     string `env:"GOOGLE_CLIENT_SECRET"`
	CallbackURL      string `env:"GOOGLE_CALLBACK_URL,required"`
	AutoSelect       bool   `env:"SIGNIN_AUTO_SELECT" envDefault:"true"`
	FilterAuthorized bool   `env:"SIGNIN_FILTER_AUTHORIZED" envDefault:"false"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"signin.db"`
	Port         string `env:"PORT" envDefault:"8080"`
	UseHTTPS     bool   `env:"USE_HTTPS" envDefault:"false"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	LoginRateLimit float64 `env:"LOGIN_RATE_LIMIT" envDefault:"1"`
	LoginRateBurst int     `env:"LOGIN_RATE_BURST" envDefault:"5"`
}

// Load reads the given .env files (default ".env") into the environment and
// parses it. Missing files are ignored; variables already set win.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
