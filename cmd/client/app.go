// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/taxconf/internal/adapter"
	"github.com/MKhiriev/taxconf/internal/logger"
)

const (
	commandGet = "get"
	commandPut = "put"

	// stdinName selects standard input as the source of put.
	stdinName = "-"
)

var (
	errUsage = errors.New("usage: taxconf-client [flags] get | put <file|->")
)

type app struct {
	adapter adapter.ConfigAdapter
	stdin   io.Reader
	stdout  io.Writer
	logger  *logger.Logger
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case commandGet:
		if len(args) != 1 {
			return errUsage
		}
		return a.get(ctx)
	case commandPut:
		if len(args) != 2 {
			return errUsage
		}
		return a.put(ctx, args[1])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// get prints the server's document indented by two spaces.
func (a *app) get(ctx context.Context) error {
	document, err := a.adapter.FetchConfig(ctx)
	if err != nil {
		return fmt.Errorf("fetch config: %w", err)
	}

	var out bytes.Buffer
	if err = json.Indent(&out, document, "", "  "); err != nil {
		return fmt.Errorf("format config: %w", err)
	}
	out.WriteByte('\n')

	_, err = out.WriteTo(a.stdout)
	return err
}

func (a *app) put(ctx context.Context, source string) error {
	document, err := a.readSource(source)
	if err != nil {
		return err
	}

	if err = a.adapter.PushConfig(ctx, document); err != nil {
		return fmt.Errorf("push config: %w", err)
	}

	a.logger.Info().Str("source", source).Int("bytes", len(document)).Msg("configuration updated")
	return nil
}

func (a *app) readSource(source string) ([]byte, error) {
	if source == stdinName {
		document, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return document, nil
	}

	document, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return document, nil
}
