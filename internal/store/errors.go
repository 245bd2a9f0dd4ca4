// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the configuration storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrConfigNotFound is returned when the configuration file does not
	// exist yet.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigUnreadable is returned when the configuration file exists but
	// cannot be read (permissions, I/O failure).
	ErrConfigUnreadable = errors.New("configuration file is unreadable")

	// ErrConfigCorrupted is returned when the configuration file was read
	// but does not contain valid JSON.
	ErrConfigCorrupted = errors.New("configuration file is corrupted")

	// ErrConfigNotSaved is returned when writing the configuration file
	// fails. The previously stored document is left in place.
	ErrConfigNotSaved = errors.New("configuration was not saved")
)

// Sentinel errors returned by the asset storage.
var (
	// ErrAssetNotFound is returned when no file exists at the requested name.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetOutsideRoot is returned when the requested name would resolve
	// outside the static root.
	ErrAssetOutsideRoot = errors.New("asset path escapes static root")

	// ErrAssetIsDirectory is returned when the requested name is a directory.
	ErrAssetIsDirectory = errors.New("asset is a directory")

	// ErrAssetUnreadable is returned for any other failure opening or
	// reading the file.
	ErrAssetUnreadable = errors.New("asset is unreadable")
)

// ErrStorageNotConfigured is returned by [NewStorages] when a required
// location is missing from the configuration.
var ErrStorageNotConfigured = errors.New("storage location is not configured")
