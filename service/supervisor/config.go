// SPDX-License-Identifier: BSD-3-Clause

package supervisor

import (
	"log/slog"
	"time"

	"github.com/amccaugh/fridgeos/service"
	halsvc "github.com/amccaugh/fridgeos/service/hal"
	smsvc "github.com/amccaugh/fridgeos/service/statemachine"
)

type config struct {
	name        string
	id          string
	disableLogo bool
	customLogo  string
	logger      *slog.Logger
	timeout     time.Duration

	// Every field of this type needs to be exported for the reflection-based
	// supervision tree wiring in Run.
	HAL           service.Service
	StateMachine  service.Service
	extraServices []service.Service
}

// Option configures a Supervisor.
type Option interface {
	apply(*config)
}

type nameOption struct{ name string }

func (o *nameOption) apply(c *config) { c.name = o.name }

// WithName sets the supervisor's name.
func WithName(name string) Option {
	return &nameOption{name: name}
}

type idOption struct{ id string }

func (o *idOption) apply(c *config) { c.id = o.id }

// WithID sets the supervisor's unique identifier.
func WithID(id string) Option {
	return &idOption{id: id}
}

type disableLogoOption struct{ disableLogo bool }

func (o *disableLogoOption) apply(c *config) { c.disableLogo = o.disableLogo }

// WithDisableLogo controls whether the startup logo is printed.
func WithDisableLogo(disableLogo bool) Option {
	return &disableLogoOption{disableLogo: disableLogo}
}

type customLogoOption struct{ customLogo string }

func (o *customLogoOption) apply(c *config) { c.customLogo = o.customLogo }

// WithCustomLogo sets a custom startup banner.
func WithCustomLogo(customLogo string) Option {
	return &customLogoOption{customLogo: customLogo}
}

type loggerOption struct{ logger *slog.Logger }

func (o *loggerOption) apply(c *config) { c.logger = o.logger }

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return &loggerOption{logger: logger}
}

type timeoutOption struct{ timeout time.Duration }

func (o *timeoutOption) apply(c *config) { c.timeout = o.timeout }

// WithTimeout sets how long the supervisor waits for a child to start or stop.
func WithTimeout(timeout time.Duration) Option {
	return &timeoutOption{timeout: timeout}
}

type halOption struct{ hal service.Service }

func (o *halOption) apply(c *config) { c.HAL = o.hal }

// WithHAL configures the HAL service with the provided options.
func WithHAL(opts ...halsvc.Option) Option {
	return &halOption{hal: halsvc.New(opts...)}
}

type stateMachineOption struct{ sm service.Service }

func (o *stateMachineOption) apply(c *config) { c.StateMachine = o.sm }

// WithStateMachine configures the state machine service with the provided options.
func WithStateMachine(opts ...smsvc.Option) Option {
	return &stateMachineOption{sm: smsvc.New(opts...)}
}

type extraServicesOption struct{ services []service.Service }

func (o *extraServicesOption) apply(c *config) { c.extraServices = o.services }

// WithExtraServices adds additional services to be supervised alongside HAL and the state machine.
func WithExtraServices(services ...service.Service) Option {
	return &extraServicesOption{services: services}
}
