// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/taxconf/internal/logger"
)

const (
	configFilePerm = 0o644
	configDirPerm  = 0o755
	configIndent   = "  "
)

// configFileStorage is the file-system implementation of [ConfigStorage].
//
// Reads share mu, writes hold it exclusively. Every write goes to a
// temporary file in the same directory which is synced and then renamed over
// the target, so a crash mid-write leaves the previous document intact.
type configFileStorage struct {
	path string
	mu   sync.RWMutex

	logger *logger.Logger
}

// NewConfigFileStorage constructs a [ConfigStorage] backed by the file at
// path. The file does not need to exist; it is created on the first Save
// together with any missing parent directories.
func NewConfigFileStorage(path string, logger *logger.Logger) ConfigStorage {
	return &configFileStorage{
		path:   path,
		logger: logger,
	}
}

// Load implements [ConfigStorage].
func (s *configFileStorage) Load(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, err := os.ReadFile(s.path)
	s.mu.RUnlock()

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigUnreadable, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s holds %d bytes of invalid JSON", ErrConfigCorrupted, s.path, len(data))
	}

	return json.RawMessage(data), nil
}

// Save implements [ConfigStorage].
func (s *configFileStorage) Save(ctx context.Context, document json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pretty, err := prettyPrint(document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigNotSaved, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = writeFileAtomic(s.path, pretty); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigNotSaved, err)
	}

	s.logger.Debug().Str("path", s.path).Int("size", len(pretty)).Msg("configuration saved")
	return nil
}

// prettyPrint re-indents document with two spaces per level and appends a
// trailing newline. Key order and number literals are preserved.
func prettyPrint(document json.RawMessage) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, document); err != nil {
		return nil, fmt.Errorf("compact document: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, compact.Bytes(), "", configIndent); err != nil {
		return nil, fmt.Errorf("indent document: %w", err)
	}
	pretty.WriteByte('\n')

	return pretty.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, configDirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(configFilePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	return nil
}
