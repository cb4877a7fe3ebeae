// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/amccaugh/fridgeos/pkg/client"
	enginepkg "github.com/amccaugh/fridgeos/pkg/statemachine"
	"github.com/amccaugh/fridgeos/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Compile-time assertion that Service implements service.Service.
var _ service.Service = (*Service)(nil)

// Service is the state machine service: it owns the control engine and
// exposes it over HTTP, both as a JSON API and as browser-friendly HTML.
type Service struct {
	config

	registry *prometheus.Registry
	metrics  *metrics
	engine   *enginepkg.Engine
}

// New creates a new Service with the provided options.
func New(opts ...Option) *Service {
	cfg := &config{
		name:                   "statemachine",
		addr:                   ":8000",
		smConfigPath:           "/etc/fridgeos/statemachine.toml",
		halBaseURL:             "http://localhost:8001",
		defaultPollingInterval: 5 * time.Second,
		logger:                 slog.Default(),
		readTimeout:            5 * time.Second,
		writeTimeout:           5 * time.Second,
		idleTimeout:            120 * time.Second,
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	registry := prometheus.NewRegistry()
	return &Service{
		config:   *cfg,
		registry: registry,
		metrics:  newMetrics(registry),
	}
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.name
}

// Run loads the control engine configuration, builds the engine against
// the configured HAL service, starts its tick loop, and serves the HTTP
// surface until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting state machine service", "config", s.smConfigPath)

	cfg, err := enginepkg.LoadConfig(s.smConfigPath, s.defaultPollingInterval)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	halClient := client.NewHALClient(s.halBaseURL)
	s.engine = enginepkg.New(cfg, halClient, s.logger)

	engineCtx, cancelEngine := context.WithCancel(ctx)
	defer cancelEngine()
	go s.engine.Run(engineCtx)

	router := s.setupRouter()
	server := &http.Server{
		Addr:         s.addr,
		Handler:      router,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%w: %w", ErrListenAndServe, err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%w: %w", ErrListenAndServe, err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}
