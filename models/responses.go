// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status values reported in [StatusResponse.Status].
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusResponse is the JSON body returned by the configuration update
// endpoint. Message is set only for failures.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewSuccessResponse returns {"status":"success"}.
func NewSuccessResponse() StatusResponse {
	return StatusResponse{Status: StatusSuccess}
}

// NewErrorResponse returns {"status":"error","message":message}.
func NewErrorResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}
