// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid server address")

	ErrInvalidJSON      = errors.New("server rejected the document as invalid JSON")
	ErrBodyTooLarge     = errors.New("server rejected the document as too large")
	ErrServer           = errors.New("server failed to process the request")
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse is returned when a 2xx response body does not
	// match what the endpoint is expected to return.
	ErrMalformedResponse = errors.New("malformed server response")
)
