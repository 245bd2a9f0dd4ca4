// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/taxconf/internal/app"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/utils"
)

// dispatchFallback handles every request that no explicit route accepted:
//
//   - OPTIONS on a path starting with /config or /update-config is a CORS
//     preflight;
//   - GET on any path is a static asset lookup;
//   - anything else is rejected with 405 without reading the body.
func (h *Handler) dispatchFallback(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodOptions && isConfigPath(r.URL.Path):
		h.preflight(w, r)
	case r.Method == http.MethodGet:
		h.serveStatic(w, r)
	default:
		h.methodNotAllowed(w, r)
	}
}

func isConfigPath(p string) bool {
	return strings.HasPrefix(p, configPath) || strings.HasPrefix(p, updateConfigPath)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not allowed")

	if _, err := utils.WriteText(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
