// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/utils"
	"github.com/MKhiriev/taxconf/models"
)

// getConfig always answers 200: read failures are already collapsed to an
// empty object by the service.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	document := h.services.ConfigService.GetConfig(r.Context())

	allowAnyOrigin(w)
	if _, err := utils.WriteRawJSON(w, document, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write configuration")
	}
}

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	allowAnyOrigin(w)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errReadBody, err))
		return
	}

	if err = h.services.ConfigService.UpdateConfig(r.Context(), body); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewSuccessResponse(), http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}
