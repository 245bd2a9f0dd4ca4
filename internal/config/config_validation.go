// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Adapter settings are not
// checked here; they belong to the client, see [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if err := validate.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if err := validate.Struct(cfg.Storage); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if err := validate.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Server.MetricsAddress != "" {
		host, port, err := net.SplitHostPort(cfg.Server.MetricsAddress)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
		sameHost := host == "" || cfg.Server.Host == "" || host == cfg.Server.Host
		if sameHost && port == strconv.Itoa(cfg.Server.Port) {
			return fmt.Errorf("%w: metrics address %q collides with server port %d",
				ErrInvalidServerConfigs, cfg.Server.MetricsAddress, cfg.Server.Port)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validate.Struct(cfg.Adapter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := validate.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
