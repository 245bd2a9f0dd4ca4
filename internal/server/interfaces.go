// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the listeners managed by this
// package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives.
	// It returns the first listener error, e.g. a failed bind.
	RunServer() error

	// Run serves requests until ctx is done or a listener fails. It returns
	// the first listener error, or nil after a clean shutdown.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every listener.
	Shutdown()
}
