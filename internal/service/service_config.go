// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/store"
)

const emptyDocument = `{}`

type configService struct {
	storage  store.ConfigStorage
	observer Observer

	logger *logger.Logger
}

// NewConfigService constructs a [ConfigService] on top of storage. A nil
// observer disables outcome reporting.
func NewConfigService(storage store.ConfigStorage, observer Observer, logger *logger.Logger) ConfigService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &configService{
		storage:  storage,
		observer: observer,
		logger:   logger,
	}
}

// GetConfig re-reads the document on every call. Failures are logged and
// reported to the observer but never surface to the caller.
func (s *configService) GetConfig(ctx context.Context) json.RawMessage {
	log := logger.FromContextOr(ctx, s.logger)

	document, err := s.storage.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConfigNotFound):
			log.Info().Err(err).Msg("configuration is absent, serving empty object")
			s.observer.ObserveConfigRead(ReadOutcomeAbsent)
		case errors.Is(err, store.ErrConfigCorrupted):
			log.Error().Err(err).Msg("configuration is corrupt, serving empty object")
			s.observer.ObserveConfigRead(ReadOutcomeCorrupt)
		default:
			log.Error().Err(err).Msg("configuration is unreadable, serving empty object")
			s.observer.ObserveConfigRead(ReadOutcomeUnreadable)
		}
		return json.RawMessage(emptyDocument)
	}

	var compact bytes.Buffer
	if err = json.Compact(&compact, document); err != nil {
		log.Error().Err(err).Msg("configuration is corrupt, serving empty object")
		s.observer.ObserveConfigRead(ReadOutcomeCorrupt)
		return json.RawMessage(emptyDocument)
	}

	s.observer.ObserveConfigRead(OutcomeOK)
	return compact.Bytes()
}

// UpdateConfig persists body as the new document. Validation is the job of
// the wrapper returned by [NewConfigValidationService].
func (s *configService) UpdateConfig(ctx context.Context, body []byte) error {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.storage.Save(ctx, json.RawMessage(body)); err != nil {
		log.Error().Err(err).Msg("failed to save configuration")
		s.observer.ObserveConfigWrite(WriteOutcomeFailed)
		return fmt.Errorf("%w: %w", ErrConfigNotSaved, err)
	}

	log.Info().Int("size", len(body)).Msg("configuration updated")
	s.observer.ObserveConfigWrite(OutcomeOK)
	return nil
}
