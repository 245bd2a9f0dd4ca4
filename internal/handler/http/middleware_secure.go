// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/unrolled/secure"
)

// withSecureHeaders adds nosniff, frame-deny and referrer-policy headers to
// every response. No CSP is set: the static pages are not ours to constrain.
func withSecureHeaders() func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}).Handler
}
