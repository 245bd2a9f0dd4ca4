// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/store"
)

type Services struct {
	ConfigService ConfigService
	StaticService StaticService
}

func NewServices(storages *store.Storages, cfg config.Storage, observer Observer, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	configService := NewConfigValidationService(observer, logger).
		Wrap(NewConfigService(storages.ConfigStorage, observer, logger))

	return &Services{
		ConfigService: configService,
		StaticService: NewStaticService(storages.AssetStorage, cfg.IndexFile, observer, logger),
	}
}
