// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientAddress = "http://localhost:5000"
	DefaultClientTimeout = 15 * time.Second
)

// ClientConfig holds settings for the salonctl command-line client.
type ClientConfig struct {
	// Address is the base URL of the salon API.
	// Env: SALON_ADDRESS
	Address string `env:"ADDRESS" validate:"required,url"`

	// Timeout bounds every outbound request.
	// Env: SALON_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"gt=0"`

	// Token is the bearer token sent on guarded routes.
	// Env: SALON_TOKEN
	Token string `env:"TOKEN"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"SALON_"`
}

// GetClientConfig merges defaults, SALON_* environment variables and the
// global flags found in args. It returns the positional arguments left after
// flag parsing (the command and its operands).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Address: DefaultClientAddress,
		Timeout: DefaultClientTimeout,
	}

	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("salonctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var fromFlags ClientConfig
	fs.StringVar(&fromFlags.Address, "addr", "", "Salon API base URL")
	fs.DurationVar(&fromFlags.Timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&fromFlags.Token, "token", "", "Bearer token for guarded routes")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	for _, src := range []*ClientConfig{&fromEnv.Client, &fromFlags} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
