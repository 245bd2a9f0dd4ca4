// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side view of a running taxconf server.
//
// [ConfigAdapter] decouples the command-line client from the transport. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrInvalidJSON] for
// 400, [ErrBodyTooLarge] for 413).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_adapter_mock.go -package=mock

// ConfigAdapter reads and replaces the configuration document held by a
// server.
type ConfigAdapter interface {
	// FetchConfig returns the server's current document as served by
	// GET /config. An absent document comes back as an empty object.
	FetchConfig(ctx context.Context) (json.RawMessage, error)

	// PushConfig uploads document through POST /update-config, replacing
	// the stored one. The document is sent verbatim; validation happens on
	// the server.
	PushConfig(ctx context.Context, document []byte) error
}
