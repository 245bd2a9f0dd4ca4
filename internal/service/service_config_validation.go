// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/taxconf/internal/logger"
)

// ConfigValidationService rejects documents that are not well-formed JSON
// before they reach the wrapped ConfigService. No schema is enforced: any
// JSON value, including non-objects, passes.
type ConfigValidationService struct {
	inner    ConfigService
	observer Observer

	logger *logger.Logger
}

func NewConfigValidationService(observer Observer, logger *logger.Logger) ConfigServiceWrapper {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ConfigValidationService{
		observer: observer,
		logger:   logger,
	}
}

func (v *ConfigValidationService) Wrap(inner ConfigService) ConfigService {
	v.inner = inner
	return v
}

func (v *ConfigValidationService) GetConfig(ctx context.Context) json.RawMessage {
	return v.inner.GetConfig(ctx)
}

func (v *ConfigValidationService) UpdateConfig(ctx context.Context, body []byte) error {
	// unmarshalling into RawMessage validates without building a value and
	// reports the offset of the first syntax error
	if err := json.Unmarshal(body, new(json.RawMessage)); err != nil {
		logger.FromContextOr(ctx, v.logger).Warn().
			Err(err).
			Int("size", len(body)).
			Msg("rejected configuration update: malformed JSON")
		v.observer.ObserveConfigWrite(WriteOutcomeInvalid)
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return v.inner.UpdateConfig(ctx, body)
}
