// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/handler/http"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/observability"
	"github.com/MKhiriev/taxconf/internal/service"
)

// Handlers groups the transport handlers of the server. Metrics is nil when
// no metrics address is configured.
type Handlers struct {
	HTTP    *http.Handler
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, metrics *observability.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, metrics, cfg, logger),
	}

	if cfg.MetricsAddress != "" {
		handlers.Metrics = metrics.Handler()
	}

	return handlers, nil
}
