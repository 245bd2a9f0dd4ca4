// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"

	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/logger"
)

// Storages groups every persistence backend used by the server.
type Storages struct {
	ConfigStorage ConfigStorage
	AssetStorage  AssetStorage
}

// NewStorages builds the file-backed storages from cfg. A missing static
// directory is reported as a warning only: the server still answers the
// configuration endpoints and every static lookup yields 404.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.ConfigFile == "" {
		return nil, fmt.Errorf("%w: config file", ErrStorageNotConfigured)
	}
	if cfg.StaticDir == "" {
		return nil, fmt.Errorf("%w: static dir", ErrStorageNotConfigured)
	}

	if info, err := os.Stat(cfg.StaticDir); err != nil || !info.IsDir() {
		logger.Warn().Err(err).Str("static_dir", cfg.StaticDir).Msg("static directory is not available")
	}

	return &Storages{
		ConfigStorage: NewConfigFileStorage(cfg.ConfigFile, logger),
		AssetStorage:  NewAssetFileStorage(cfg.StaticDir, logger),
	}, nil
}
