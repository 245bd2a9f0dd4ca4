// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the taxconf
// application. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - validate  — go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds process-wide settings such as the installation root and
	// the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the configuration document and the
	// static asset directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener and timeout settings for the HTTP server.
	// Its fields carry full variable names because the port is read from
	// the conventional bare PORT variable.
	Server Server

	// Adapter holds the settings used by the command-line client to reach
	// a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// RootDir is the installation root. Relative storage paths are resolved
	// against it.
	// Env: APP_ROOT_DIR
	RootDir string `env:"ROOT_DIR" validate:"required"`

	// LogLevel is the minimum level of emitted log entries.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Storage holds the file-system locations used by the server.
type Storage struct {
	// ConfigFile is the path of the persisted JSON configuration document.
	// Env: STORAGE_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE" validate:"required"`

	// StaticDir is the directory static assets are served from.
	// Env: STORAGE_STATIC_DIR
	StaticDir string `env:"STATIC_DIR" validate:"required"`

	// IndexFile is the document served for "/" and the empty path.
	// Env: STORAGE_INDEX_FILE
	IndexFile string `env:"INDEX_FILE" validate:"required"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all
	// interfaces.
	// Env: SERVER_HOST
	Host string `env:"SERVER_HOST" validate:"omitempty,hostname_rfc1123|ip"`

	// Port is the TCP port of the HTTP server.
	// Env: PORT
	Port int `env:"PORT" validate:"min=1,max=65535"`

	// MetricsAddress is the "host:port" of the Prometheus listener. Empty
	// disables it.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"SERVER_METRICS_ADDRESS" validate:"omitempty,hostname_port"`

	// ReadHeaderTimeout bounds how long a client may take to send request
	// headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" validate:"gt=0"`

	// ShutdownTimeout bounds graceful shutdown of all listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`

	// MaxBodyBytes limits the size of a configuration update body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" validate:"gt=0"`
}

// Address returns the "host:port" the HTTP server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Adapter holds the client's view of a running server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme
	// (e.g. "localhost:3000", "https://taxconf.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout is the timeout applied to every client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig with storage paths resolved
// against App.RootDir, or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
