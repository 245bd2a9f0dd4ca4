// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/store"
	"github.com/MKhiriev/taxconf/models"
)

type staticService struct {
	assets    store.AssetStorage
	indexFile string
	observer  Observer

	logger *logger.Logger
}

// NewStaticService constructs a [StaticService] reading from assets. The
// root URL path resolves to indexFile.
func NewStaticService(assets store.AssetStorage, indexFile string, observer Observer, logger *logger.Logger) StaticService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &staticService{
		assets:    assets,
		indexFile: indexFile,
		observer:  observer,
		logger:    logger,
	}
}

func (s *staticService) GetAsset(ctx context.Context, urlPath string) (models.Asset, error) {
	name := s.assetName(urlPath)

	content, err := s.assets.Open(ctx, name)
	if err != nil {
		log := logger.FromContextOr(ctx, s.logger)
		if errors.Is(err, store.ErrAssetNotFound) || errors.Is(err, store.ErrAssetIsDirectory) {
			log.Debug().Err(err).Str("asset", name).Msg("asset is absent")
			s.observer.ObserveAssetLookup(AssetOutcomeNotFound)
		} else {
			log.Warn().Err(err).Str("asset", name).Msg("asset lookup failed")
			s.observer.ObserveAssetLookup(AssetOutcomeError)
		}
		return models.Asset{}, fmt.Errorf("%w: %w", ErrAssetNotFound, err)
	}

	s.observer.ObserveAssetLookup(OutcomeOK)
	return models.Asset{
		Name:        name,
		ContentType: ContentTypeFor(name),
		Content:     content,
	}, nil
}

// assetName canonicalises urlPath into a slash-separated name relative to
// the static root. Cleaning a rooted path drops every leading "..".
func (s *staticService) assetName(urlPath string) string {
	cleaned := path.Clean("/" + urlPath)
	if cleaned == "/" {
		return s.indexFile
	}
	return strings.TrimPrefix(cleaned, "/")
}
