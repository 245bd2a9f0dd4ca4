// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// taxconf HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies.
package app

const (
	// MsgInvalidJSON is returned when the configuration update body is not
	// well-formed JSON.
	MsgInvalidJSON = "Invalid JSON"

	// MsgBodyTooLarge is returned when the configuration update body exceeds
	// the configured size limit.
	MsgBodyTooLarge = "Request body too large"

	// MsgSaveFailed is returned when a valid document could not be written
	// to disk.
	MsgSaveFailed = "Failed to save configuration"

	// MsgNotFound is the plain-text body of every static 404 response.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is the plain-text body of every 405 response.
	MsgMethodNotAllowed = "Method Not Allowed"
)
