// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/taxconf/internal/config"
	"github.com/MKhiriev/taxconf/internal/handler"
	"github.com/MKhiriev/taxconf/internal/logger"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const metricsPath = "/metrics"

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer

	// ready is closed once every listener is bound
	ready chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer: newHTTPServer("http", cfg.Address(), handlers.HTTP.Init(), cfg, logger),
		ready:      make(chan struct{}),
		logger:     logger,
	}

	if handlers.Metrics != nil && cfg.MetricsAddress != "" {
		router := chi.NewRouter()
		router.Method("GET", metricsPath, handlers.Metrics)
		servers.metricsServer = newHTTPServer("metrics", cfg.MetricsAddress, router, cfg, logger)
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	listeners := s.listeners()
	for i, l := range listeners {
		if err := l.listen(); err != nil {
			for _, opened := range listeners[:i] {
				_ = opened.listener.Close()
			}
			return err
		}
	}
	close(s.ready)

	g, gctx := errgroup.WithContext(ctx)
	gctx, stop := context.WithCancel(gctx)
	defer stop()

	for _, l := range listeners {
		s.logger.Info().Str("listener", l.name).Msg("launching server")
		g.Go(func() error {
			defer stop()
			return l.RunServer()
		})
	}

	// stop every listener once a signal arrives or any of them exits
	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	for _, l := range s.listeners() {
		l.Shutdown()
	}
}

func (s *server) listeners() []*httpServer {
	listeners := []*httpServer{s.httpServer}
	if s.metricsServer != nil {
		listeners = append(listeners, s.metricsServer)
	}
	return listeners
}
