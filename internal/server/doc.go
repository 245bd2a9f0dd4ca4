// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's listeners.
//
// It runs the main HTTP listener and, when configured, the metrics listener
// under one errgroup: a signal, a cancelled context or a failing listener
// shuts all of them down gracefully within the configured timeout.
package server
