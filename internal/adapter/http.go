// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/MKhiriev/taxconf/internal/utils"
	"github.com/MKhiriev/taxconf/models"
)

const (
	configPath       = "/config"
	updateConfigPath = "/update-config"
)

type httpConfigAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfigAdapter constructs an HTTP implementation of [ConfigAdapter].
// It normalises cfg.HTTPAddress into a base URL (adding "http://" when no
// scheme is given) and applies cfg.RequestTimeout to every request.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed as a URL with a host.
func NewHTTPConfigAdapter(cfg config.Adapter, logger *logger.Logger) (ConfigAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpConfigAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchConfig implements [ConfigAdapter].
func (h *httpConfigAdapter) FetchConfig(ctx context.Context) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(configPath)
	if err != nil {
		return nil, fmt.Errorf("fetch config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned %d bytes of invalid JSON", ErrMalformedResponse, configPath, len(body))
	}

	h.logger.Debug().Int("size", len(body)).Msg("configuration fetched")
	return json.RawMessage(body), nil
}

// PushConfig implements [ConfigAdapter].
func (h *httpConfigAdapter) PushConfig(ctx context.Context, document []byte) error {
	var status models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(document).
		Post(updateConfigPath)
	if err != nil {
		return fmt.Errorf("push config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return fmt.Errorf("%w: decode status: %w", ErrMalformedResponse, err)
	}
	if status.Status != models.StatusSuccess {
		return fmt.Errorf("%w: status %q", ErrMalformedResponse, status.Status)
	}

	h.logger.Debug().Int("size", len(document)).Msg("configuration pushed")
	return nil
}
