// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Asset is a static file loaded from the static root and ready to be
// written to an HTTP response verbatim.
type Asset struct {
	// Name is the slash-separated path of the file relative to the static
	// root (e.g. "index.html", "js/app.js").
	Name string

	// ContentType is the MIME type resolved from the file extension.
	ContentType string

	// Content holds the raw file bytes.
	Content []byte
}

// Size returns the number of bytes in the asset body.
func (a Asset) Size() int {
	return len(a.Content)
}
