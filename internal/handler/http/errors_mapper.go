// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/taxconf/internal/app"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/service"
	"github.com/MKhiriev/taxconf/internal/utils"
	"github.com/MKhiriev/taxconf/models"
)

// errReadBody wraps failures reading the update body other than the size
// limit, e.g. a client hanging up mid-upload.
var errReadBody = errors.New("failed to read request body")

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidJSON:    {http.StatusBadRequest, app.MsgInvalidJSON},
	errReadBody:               {http.StatusBadRequest, app.MsgInvalidJSON},
	service.ErrConfigNotSaved: {http.StatusInternalServerError, app.MsgSaveFailed},
}

// responseFromError maps err to a status code and a client-facing message.
// The size limit is checked first since it arrives wrapped in errReadBody.
func responseFromError(err error) errorResponse {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errorResponse{http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge}
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgSaveFailed}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.status).Msg("configuration update rejected")

	if _, werr := utils.WriteJSON(w, models.NewErrorResponse(resp.message), resp.status); werr != nil {
		log.Err(werr).Msg("failed to write response")
	}
}
