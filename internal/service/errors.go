// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidJSON is returned by UpdateConfig when the request body is not
	// a well-formed JSON value. Nothing is persisted in that case.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrConfigNotSaved is returned by UpdateConfig when the document was
	// valid but could not be persisted.
	ErrConfigNotSaved = errors.New("failed to save configuration")

	// ErrAssetNotFound is returned by GetAsset for every lookup failure:
	// missing file, directory, path outside the static root or I/O error.
	ErrAssetNotFound = errors.New("asset not found")
)
