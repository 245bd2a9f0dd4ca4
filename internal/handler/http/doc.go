// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the server.
//
// Two explicit routes serve the configuration document (GET /config and
// POST /update-config). Every other request goes through one fallback
// dispatcher that answers CORS preflights for the configuration paths,
// serves static assets for GET and rejects anything else with 405.
// Request tracing, access logging, metrics, panic recovery and security
// headers wrap all of them.
package http
