// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] against its `validate` struct
// tags and verifies that the database URI can be combined with the
// configured credentials.
func (cfg *StructuredConfig) validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := cfg.Storage.DB.ConnectionURI(); err != nil {
		return err
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	return nil
}
