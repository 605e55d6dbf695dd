// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_StructuredNames(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("STORAGE_DB_URI", "mongodb://localhost:27017")
	t.Setenv("STORAGE_DB_NAME", "salon")
	t.Setenv("STORAGE_DB_CONNECT_TIMEOUT", "3s")
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "20s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CONFIG", "/etc/salon.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
	assert.Equal(t, "salon", cfg.Storage.DB.Name)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/etc/salon.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "forever")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseLegacyEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("DB_USER", "salon")
	t.Setenv("DB_PASS", "pa55")
	t.Setenv("ACCESS_TOKEN", "secret")

	cfg, err := parseLegacyEnv()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "salon", cfg.Storage.DB.User)
	assert.Equal(t, "pa55", cfg.Storage.DB.Password)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestParseLegacyEnv_NoPort(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := parseLegacyEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

// TestLoadDotEnv_DoesNotOverride verifies that variables already present in
// the environment keep their values.
func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SALON_TEST_A=from-file\nSALON_TEST_B=from-file\n"), 0o600))

	t.Setenv("SALON_TEST_A", "from-env")
	t.Setenv("SALON_TEST_B", "")
	require.NoError(t, os.Unsetenv("SALON_TEST_B"))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("SALON_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("SALON_TEST_B"))
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BAD-KEY=value\n"), 0o600))

	assert.Error(t, loadDotEnv(path))
}
