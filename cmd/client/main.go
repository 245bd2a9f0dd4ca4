// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/taxconf/internal/adapter"
	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries the document
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewClientLogger("taxconf-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPConfigAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cli := &app{
		adapter: serverAdapter,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		logger:  log,
	}
	if err = cli.run(ctx, flag.Args()); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
