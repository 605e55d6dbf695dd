// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv holds the variable names the salon deployment used before the
// structured APP_/STORAGE_/SERVER_ names existed.
type legacyEnv struct {
	Port        string `env:"PORT"`
	DBUser      string `env:"DB_USER"`
	DBPass      string `env:"DB_PASS"`
	AccessToken string `env:"ACCESS_TOKEN"`
}

// parseLegacyEnv maps the legacy variables onto a [StructuredConfig].
// PORT becomes ":<PORT>".
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{TokenSignKey: legacy.AccessToken},
		Storage: Storage{DB: DB{
			User:     legacy.DBUser,
			Password: legacy.DBPass,
		}},
	}
	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return cfg, nil
}

// loadDotEnv seeds the process environment from the given files. Variables
// already set are never overwritten. Missing files are not an error.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", path, err)
		}
	}

	return nil
}
