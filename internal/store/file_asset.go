// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/taxconf/internal/logger"
)

// assetFileStorage is the file-system implementation of [AssetStorage].
//
// Every lookup goes through an [os.Root] opened on the static directory, so
// neither ".." segments nor symlinks can reach files outside of it.
type assetFileStorage struct {
	dir string

	logger *logger.Logger
}

// NewAssetFileStorage constructs an [AssetStorage] serving files from dir.
// The directory is opened per lookup; a missing directory makes every
// lookup fail with [ErrAssetUnreadable] instead of failing construction.
func NewAssetFileStorage(dir string, logger *logger.Logger) AssetStorage {
	return &assetFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// Open implements [AssetStorage].
func (s *assetFileStorage) Open(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	localName := filepath.FromSlash(name)
	if !filepath.IsLocal(localName) {
		return nil, fmt.Errorf("%w: %q", ErrAssetOutsideRoot, name)
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: open static root: %w", ErrAssetUnreadable, err)
	}
	defer root.Close()

	f, err := root.Open(localName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("%w: %w", ErrAssetUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrAssetIsDirectory, name)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetUnreadable, err)
	}

	s.logger.Debug().Str("asset", name).Int("size", len(content)).Msg("asset read")
	return content, nil
}
