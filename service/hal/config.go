// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"log/slog"
	"time"
)

type config struct {
	name                string
	addr                string
	hardwareConfigPath  string
	logger              *slog.Logger
	readTimeout         time.Duration
	writeTimeout        time.Duration
	idleTimeout         time.Duration
}

// Option configures a Service.
type Option interface {
	apply(*config)
}

type nameOption struct{ name string }

func (o *nameOption) apply(c *config) { c.name = o.name }

// WithName sets the service's unique name.
func WithName(name string) Option {
	return &nameOption{name: name}
}

type addrOption struct{ addr string }

func (o *addrOption) apply(c *config) { c.addr = o.addr }

// WithAddr sets the HTTP listen address (e.g. ":8001").
func WithAddr(addr string) Option {
	return &addrOption{addr: addr}
}

type hardwareConfigPathOption struct{ path string }

func (o *hardwareConfigPathOption) apply(c *config) { c.hardwareConfigPath = o.path }

// WithHardwareConfigPath sets the path to the hardware TOML document.
func WithHardwareConfigPath(path string) Option {
	return &hardwareConfigPathOption{path: path}
}

type loggerOption struct{ logger *slog.Logger }

func (o *loggerOption) apply(c *config) { c.logger = o.logger }

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return &loggerOption{logger: logger}
}

type readTimeoutOption struct{ d time.Duration }

func (o *readTimeoutOption) apply(c *config) { c.readTimeout = o.d }

// WithReadTimeout sets the HTTP server's read timeout.
func WithReadTimeout(d time.Duration) Option {
	return &readTimeoutOption{d: d}
}

type writeTimeoutOption struct{ d time.Duration }

func (o *writeTimeoutOption) apply(c *config) { c.writeTimeout = o.d }

// WithWriteTimeout sets the HTTP server's write timeout.
func WithWriteTimeout(d time.Duration) Option {
	return &writeTimeoutOption{d: d}
}

type idleTimeoutOption struct{ d time.Duration }

func (o *idleTimeoutOption) apply(c *config) { c.idleTimeout = o.d }

// WithIdleTimeout sets the HTTP server's idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return &idleTimeoutOption{d: d}
}
