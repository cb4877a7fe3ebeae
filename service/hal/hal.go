// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	fridgehal "github.com/amccaugh/fridgeos/pkg/hal"
	"github.com/amccaugh/fridgeos/pkg/hal/drivers"
	"github.com/amccaugh/fridgeos/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Compile-time assertion that Service implements service.Service.
var _ service.Service = (*Service)(nil)

// Service is the HAL REST service: it owns the hardware configuration, the
// driver registry, and the HAL core, and exposes them over HTTP.
type Service struct {
	config

	registry *prometheus.Registry
	metrics  *metrics
	hal      *fridgehal.HAL
}

// New creates a new Service with the provided options.
func New(opts ...Option) *Service {
	cfg := &config{
		name:               "hal",
		addr:               ":8001",
		hardwareConfigPath: "/etc/fridgeos/hardware.toml",
		logger:             slog.Default(),
		readTimeout:        5 * time.Second,
		writeTimeout:       5 * time.Second,
		idleTimeout:        120 * time.Second,
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

// Run loads the hardware configuration, builds the HAL core, and serves
// the HTTP API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting HAL service", "config", s.hardwareConfigPath)

	hwCfg, err := fridgehal.LoadHardwareConfig(s.hardwareConfigPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	registry := fridgehal.NewRegistry()
	drivers.RegisterDummyDrivers(registry)
	drivers.RegisterSysfsDrivers(registry)
	drivers.RegisterGPIODrivers(registry)
	drivers.RegisterModbusDrivers(registry)

	h, err := fridgehal.New(ctx, hwCfg, registry, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildHAL, err)
	}
	s.hal = h

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
