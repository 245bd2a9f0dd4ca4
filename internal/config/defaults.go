// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultRootDir           = "."
	DefaultLogLevel          = "info"
	DefaultConfigFile        = "config.json"
	DefaultStaticDir         = "public"
	DefaultIndexFile         = "index.html"
	DefaultPort              = 3000
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultMaxBodyBytes      = 10 << 20
	DefaultAdapterAddress    = "localhost:3000"
	DefaultRequestTimeout    = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RootDir:  DefaultRootDir,
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			ConfigFile: DefaultConfigFile,
			StaticDir:  DefaultStaticDir,
			IndexFile:  DefaultIndexFile,
		},
		Server: Server{
			Port:              DefaultPort,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
			MaxBodyBytes:      DefaultMaxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
