// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAssetTree lays out
//
//	<base>/secret.txt
//	<base>/public/index.html
//	<base>/public/js/app.js
//	<base>/public/img/      (empty directory)
func newTestAssetTree(t *testing.T) (base, static string) {
	t.Helper()
	base = t.TempDir()
	static = filepath.Join(base, "public")

	require.NoError(t, os.MkdirAll(filepath.Join(static, "js"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(static, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("top secret"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>rates</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "js", "app.js"), []byte("console.log(1)"), 0o644))

	return base, static
}

func TestAssetFileStorage_Open(t *testing.T) {
	_, static := newTestAssetTree(t)
	s := NewAssetFileStorage(static, logger.Nop())

	tests := []struct {
		name    string
		asset   string
		want    string
		wantErr error
	}{
		{name: "top-level file", asset: "index.html", want: "<h1>rates</h1>"},
		{name: "nested file", asset: "js/app.js", want: "console.log(1)"},
		{name: "missing file", asset: "missing.css", wantErr: ErrAssetNotFound},
		{name: "missing nested file", asset: "js/missing.js", wantErr: ErrAssetNotFound},
		{name: "directory", asset: "img", wantErr: ErrAssetIsDirectory},
		{name: "parent traversal", asset: "../secret.txt", wantErr: ErrAssetOutsideRoot},
		{name: "deep traversal", asset: "js/../../secret.txt", wantErr: ErrAssetOutsideRoot},
		{name: "absolute path", asset: "/etc/passwd", wantErr: ErrAssetOutsideRoot},
		{name: "empty name", asset: "", wantErr: ErrAssetOutsideRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Open(context.Background(), tt.asset)
			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestAssetFileStorage_Open_SymlinkEscapeIsRejected(t *testing.T) {
	base, static := newTestAssetTree(t)
	link := filepath.Join(static, "leak.txt")
	if err := os.Symlink(filepath.Join(base, "secret.txt"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	s := NewAssetFileStorage(static, logger.Nop())

	got, err := s.Open(context.Background(), "leak.txt")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssetUnreadable)
}

func TestAssetFileStorage_Open_MissingRoot(t *testing.T) {
	s := NewAssetFileStorage(filepath.Join(t.TempDir(), "nope"), logger.Nop())

	got, err := s.Open(context.Background(), "index.html")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrAssetUnreadable)
}

func TestAssetFileStorage_Open_CancelledContext(t *testing.T) {
	_, static := newTestAssetTree(t)
	s := NewAssetFileStorage(static, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Open(ctx, "index.html")

	assert.ErrorIs(t, err, context.Canceled)
}
