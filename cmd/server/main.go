// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/handler"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/observability"
	"github.com/MKhiriev/taxconf/internal/server"
	"github.com/MKhiriev/taxconf/internal/service"
	"github.com/MKhiriev/taxconf/internal/store"
	"github.com/MKhiriev/taxconf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	log := logger.NewLogger("taxconf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	metrics := observability.NewMetrics()
	services := service.NewServices(storages, cfg.Storage, metrics, log)

	handlers, err := handler.NewHandlers(services, metrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
