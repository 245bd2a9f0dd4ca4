// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/taxconf/models"
)

// ConfigService reads and replaces the configuration document.
type ConfigService interface {
	// GetConfig returns the stored document in compact form. It never fails:
	// a missing, unreadable or corrupted document yields an empty object.
	GetConfig(ctx context.Context) json.RawMessage

	// UpdateConfig replaces the stored document with body.
	UpdateConfig(ctx context.Context, body []byte) error
}

// StaticService resolves URL paths to static assets.
type StaticService interface {
	GetAsset(ctx context.Context, urlPath string) (models.Asset, error)
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}

// Observer receives the outcome of every configuration and asset operation.
type Observer interface {
	ObserveConfigRead(outcome string)
	ObserveConfigWrite(outcome string)
	ObserveAssetLookup(outcome string)
}
