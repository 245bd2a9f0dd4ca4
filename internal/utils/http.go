// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeText   = "text/plain; charset=utf-8"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.NewSuccessResponse(), http.StatusOK)
//	WriteJSON(w, models.NewErrorResponse("Invalid JSON"), http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteRawJSON(w, jsonData, statusCode)
}

// WriteRawJSON writes an already encoded JSON document as is.
func WriteRawJSON(w http.ResponseWriter, document []byte, statusCode int) (int, error) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(document)
}

// WriteText writes a plain-text body.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set(contentTypeHeader, contentTypeText)
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}

// WriteBytes writes content with the given content type.
func WriteBytes(w http.ResponseWriter, content []byte, contentType string, statusCode int) (int, error) {
	w.Header().Set(contentTypeHeader, contentType)
	w.WriteHeader(statusCode)

	return w.Write(content)
}
