package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig maps environment variables onto config fields. Empty values are
// treated as unset so defaults survive.
type envConfig struct {
	EndpointAddrHTTP      string        `env:"ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"JWT_EXPIRATION"`
}

// parseEnv overlays values from the process environment onto cfg. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("env parse error: %w", err)
	}

	if e.EndpointAddrHTTP != "" {
		cfg.EndpointAddrHTTP = e.EndpointAddrHTTP
	}
	if e.DatabaseDSN != "" {
		cfg.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		cfg.SecretKey = e.SecretKey
	}
	if e.TokenValidityDuration != 0 {
		cfg.TokenValidityDuration = e.TokenValidityDuration
	}

	return nil
}
