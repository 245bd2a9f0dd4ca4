// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	configPath       = "/config"
	updateConfigPath = "/update-config"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.metrics.Middleware,
		middleware.Recoverer,
		withSecureHeaders(),
	)

	router.Get(configPath, h.getConfig)
	router.Post(updateConfigPath, h.updateConfig)

	// chi answers unknown paths with NotFound and known paths with a foreign
	// method with MethodNotAllowed; both fall through to the same dispatcher
	router.NotFound(h.dispatchFallback)
	router.MethodNotAllowed(h.dispatchFallback)

	return router
}
