// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"encoding/json"
)

// ConfigStorage persists the single configuration document.
//
// Implementations must make a single Save atomic with respect to concurrent
// Load and Save calls: a reader observes either the previous document or the
// new one, never a partial write.
type ConfigStorage interface {
	// Load returns the stored document exactly as persisted. It returns an
	// error wrapping [ErrConfigNotFound] when nothing has been stored yet,
	// [ErrConfigCorrupted] when the stored bytes are not valid JSON, and
	// [ErrConfigUnreadable] for any other I/O failure.
	Load(ctx context.Context) (json.RawMessage, error)

	// Save replaces the stored document with document, pretty-printed with
	// two-space indentation. document must be valid JSON.
	Save(ctx context.Context, document json.RawMessage) error
}

// AssetStorage gives read-only access to files under the static root.
type AssetStorage interface {
	// Open returns the content of the file at name, a slash-separated path
	// relative to the static root. Names that would resolve outside the root
	// are rejected with [ErrAssetOutsideRoot].
	Open(ctx context.Context, name string) ([]byte, error)
}
