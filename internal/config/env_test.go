// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownEnvVars lists every variable read by [StructuredConfig].
var knownEnvVars = []string{
	"CONFIG",
	"APP_ROOT_DIR", "APP_LOG_LEVEL",
	"STORAGE_CONFIG_FILE", "STORAGE_STATIC_DIR", "STORAGE_INDEX_FILE",
	"SERVER_HOST", "PORT", "SERVER_METRICS_ADDRESS",
	"SERVER_READ_HEADER_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_MAX_BODY_BYTES",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
}

// clearEnvVars unsets every known variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range knownEnvVars {
		if old, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		}
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/taxconf/server.json",

		"APP_ROOT_DIR":  "/opt/taxconf",
		"APP_LOG_LEVEL": "debug",

		"STORAGE_CONFIG_FILE": "data/config.json",
		"STORAGE_STATIC_DIR":  "www",
		"STORAGE_INDEX_FILE":  "home.html",

		"SERVER_HOST":                "127.0.0.1",
		"PORT":                       "8080",
		"SERVER_METRICS_ADDRESS":     ":9090",
		"SERVER_READ_HEADER_TIMEOUT": "5s",
		"SERVER_SHUTDOWN_TIMEOUT":    "20s",
		"SERVER_MAX_BODY_BYTES":      "2048",

		"ADAPTER_ADDRESS":         "http://taxconf.local",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/etc/taxconf/server.json", cfg.JSONFilePath)

	assert.Equal(t, "/opt/taxconf", cfg.App.RootDir)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	assert.Equal(t, "data/config.json", cfg.Storage.ConfigFile)
	assert.Equal(t, "www", cfg.Storage.StaticDir)
	assert.Equal(t, "home.html", cfg.Storage.IndexFile)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)

	assert.Equal(t, "http://taxconf.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PortOnly(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"PORT": "4000"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)

	// Others untouched
	assert.Empty(t, cfg.Server.Host)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Adapter{}, cfg.Adapter)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"PORT": "not-a-number"})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "soon"})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
}
