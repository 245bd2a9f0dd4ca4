// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/taxconf/internal/service"
	"github.com/MKhiriev/taxconf/internal/store"
	"github.com/MKhiriev/taxconf/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestServeStatic_WritesAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _, staticSvc := newTestRouter(t, ctrl)
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	staticSvc.EXPECT().GetAsset(gomock.Any(), "/img/logo.png").Return(models.Asset{
		Name:        "img/logo.png",
		ContentType: "image/png",
		Content:     png,
	}, nil)

	rr := serve(router, http.MethodGet, "/img/logo.png", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, png, rr.Body.Bytes())
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeStatic_StripsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _, staticSvc := newTestRouter(t, ctrl)

	staticSvc.EXPECT().GetAsset(gomock.Any(), "/app.js").Return(models.Asset{ContentType: "text/javascript"}, nil)

	rr := serve(router, http.MethodGet, "/app.js?v=3", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestServeStatic_FailuresAre404(t *testing.T) {
	causes := []error{
		store.ErrAssetNotFound,
		store.ErrAssetIsDirectory,
		store.ErrAssetOutsideRoot,
		store.ErrAssetUnreadable,
	}

	for _, cause := range causes {
		t.Run(cause.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, _, staticSvc := newTestRouter(t, ctrl)

			staticSvc.EXPECT().GetAsset(gomock.Any(), "/missing.css").
				Return(models.Asset{}, fmt.Errorf("%w: %w", service.ErrAssetNotFound, cause))

			rr := serve(router, http.MethodGet, "/missing.css", "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, "Not Found", rr.Body.String())
		})
	}
}
