// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/taxconf/internal/app"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/utils"
)

// serveStatic answers with the asset behind the request path. Every lookup
// failure is a plain-text 404; the cause is only logged by the service.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	asset, err := h.services.StaticService.GetAsset(r.Context(), r.URL.Path)
	if err != nil {
		if _, err = utils.WriteText(w, app.MsgNotFound, http.StatusNotFound); err != nil {
			logger.FromRequest(r).Err(err).Msg("failed to write response")
		}
		return
	}

	if _, err = utils.WriteBytes(w, asset.Content, asset.ContentType, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("asset", asset.Name).Msg("failed to write asset")
	}
}
