// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/taxconf/internal/app"
	"github.com/MKhiriev/taxconf/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// explicit routes
// ─────────────────────────────────────────────

func TestRoutes_GetConfig(t *testing.T) {
	for _, target := range []string{"/config", "/config?cache=no"} {
		t.Run(target, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, configSvc, _ := newTestRouter(t, ctrl)

			configSvc.EXPECT().GetConfig(gomock.Any()).Return(json.RawMessage(`{"vat":7.5}`))

			rr := serve(router, http.MethodGet, target, "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, `{"vat":7.5}`, rr.Body.String())
		})
	}
}

func TestRoutes_PostUpdateConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, configSvc, _ := newTestRouter(t, ctrl)

	configSvc.EXPECT().UpdateConfig(gomock.Any(), []byte(`{"vat":7.5}`)).Return(nil)

	rr := serve(router, http.MethodPost, "/update-config?source=ui", `{"vat":7.5}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
}

// ─────────────────────────────────────────────
// preflight
// ─────────────────────────────────────────────

func TestRoutes_Preflight(t *testing.T) {
	paths := []string{"/config", "/update-config", "/config/", "/configuration", "/update-config/extra", "/config?x=1"}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no service expectations: a preflight must not reach any service
			router, _, _ := newTestRouter(t, ctrl)

			rr := serve(router, http.MethodOptions, p, "")

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Empty(t, rr.Body.String())
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestRoutes_OptionsOnOtherPathIsNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _, _ := newTestRouter(t, ctrl)

	rr := serve(router, http.MethodOptions, "/index.html", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

// ─────────────────────────────────────────────
// static fallback
// ─────────────────────────────────────────────

func TestRoutes_GetOtherPathsServeStatic(t *testing.T) {
	paths := []string{"/", "/index.html", "/css/site.css", "/update-config", "/config/", "/configuration"}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, _, staticSvc := newTestRouter(t, ctrl)

			staticSvc.EXPECT().GetAsset(gomock.Any(), p).Return(models.Asset{
				Name:        "asset",
				ContentType: "text/html",
				Content:     []byte("<p>static</p>"),
			}, nil)

			rr := serve(router, http.MethodGet, p, "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "<p>static</p>", rr.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// unsupported methods
// ─────────────────────────────────────────────

func TestRoutes_UnsupportedMethods(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/config"},
		{http.MethodPut, "/config"},
		{http.MethodPut, "/update-config"},
		{http.MethodPut, "/"},
		{http.MethodPut, "/index.html"},
		{http.MethodGet + "X", "/"},
		{http.MethodDelete, "/config"},
		{http.MethodPatch, "/update-config"},
		{http.MethodPost, "/"},
		{http.MethodPost, "/index.html"},
		{http.MethodHead, "/"},
		{http.MethodHead, "/config"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, _, _ := newTestRouter(t, ctrl)

			rr := serve(router, tt.method, tt.path, `{"vat":7.5}`)

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			if tt.method != http.MethodHead {
				assert.Equal(t, app.MsgMethodNotAllowed, rr.Body.String())
			}
		})
	}
}

// ─────────────────────────────────────────────
// cross-cutting middleware
// ─────────────────────────────────────────────

func TestRoutes_EveryResponseCarriesTraceAndSecurityHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _, _ := newTestRouter(t, ctrl)

	rr := serve(router, http.MethodDelete, "/", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, configSvc, _ := newTestRouter(t, ctrl)

	configSvc.EXPECT().GetConfig(gomock.Any()).DoAndReturn(func(context.Context) json.RawMessage {
		panic("boom")
	})

	rr := serve(router, http.MethodGet, "/config", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
