// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/observability"
	"github.com/MKhiriev/taxconf/internal/service"
	"github.com/MKhiriev/taxconf/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *observability.Metrics
	traceIDs *utils.UUIDGenerator

	maxBodyBytes int64

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, which disables
// request metrics.
func NewHandler(services *service.Services, metrics *observability.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
	}

	logger.Info().Int64("max_body_bytes", maxBodyBytes).Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      metrics,
		traceIDs:     utils.NewUUIDGenerator(),
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}
