// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"log/slog"
	"time"
)

type config struct {
	name                   string
	addr                   string
	smConfigPath           string
	halBaseURL             string
	defaultPollingInterval time.Duration
	logger                 *slog.Logger
	readTimeout            time.Duration
	writeTimeout           time.Duration
	idleTimeout            time.Duration
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

// WithAddr sets the HTTP listen address (e.g. ":8000").
func WithAddr(addr string) Option {
	return &addrOption{addr: addr}
}

type smConfigPathOption struct{ path string }

func (o *smConfigPathOption) apply(c *config) { c.smConfigPath = o.path }

// WithConfigPath sets the path to the control engine TOML document.
func WithConfigPath(path string) Option {
	return &smConfigPathOption{path: path}
}

type halBaseURLOption struct{ url string }

func (o *halBaseURLOption) apply(c *config) { c.halBaseURL = o.url }

// WithHALBaseURL sets the base URL of the HAL service this engine drives.
func WithHALBaseURL(url string) Option {
	return &halBaseURLOption{url: url}
}

type defaultPollingIntervalOption struct{ d time.Duration }

func (o *defaultPollingIntervalOption) apply(c *config) { c.defaultPollingInterval = o.d }

// WithDefaultPollingInterval sets the tick interval used unless overridden
// by the config document's [settings].polling_interval.
func WithDefaultPollingInterval(d time.Duration) Option {
	return &defaultPollingIntervalOption{d: d}
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
