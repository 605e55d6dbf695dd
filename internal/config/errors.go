// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidConfig wraps every struct-tag validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidStorageConfigs indicates an unusable database URI.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidClientConfigs indicates missing client address or timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
