// SPDX-License-Identifier: BSD-3-Clause

package supervisor

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"cirello.io/oversight/v2"
	"github.com/arunsworld/nursery"
	"github.com/google/uuid"

	"github.com/amccaugh/fridgeos/pkg/log"
	"github.com/amccaugh/fridgeos/pkg/process"
	"github.com/amccaugh/fridgeos/service"
	halsvc "github.com/amccaugh/fridgeos/service/hal"
	smsvc "github.com/amccaugh/fridgeos/service/statemachine"
)

const defaultLogo = `
  ___ ___ _    __  ___  _____
 | __| _ (_)  /  \/ _ \/  __/
 | _||   / |  | () | (_) | (_
 |_| |_|_\_|   \__/ \___/\___|

 FridgeOS
`

// Compile-time assertion that Supervisor implements service.Service.
var _ service.Service = (*Supervisor)(nil)

// Supervisor runs the HAL and state machine services under a fault-tolerant
// supervision tree: if either crashes it is restarted independently without
// bringing the other down.
type Supervisor struct {
	config
}

// New creates a new Supervisor with the provided options.
func New(opts ...Option) *Supervisor {
	cfg := &config{
		name:         "supervisor",
		logger:       log.NewDefaultLogger(),
		timeout:      10 * time.Second,
		HAL:          halsvc.New(),
		StateMachine: smsvc.New(),
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	return &Supervisor{config: *cfg}
}

// Name returns the supervisor's name.
func (s *Supervisor) Name() string {
	return s.name
}

// Run starts the supervision tree and blocks until ctx is canceled or a
// fatal error occurs.
func (s *Supervisor) Run(ctx context.Context) (err error) {
	if s.name == "" {
		return ErrNameEmpty
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s %w: %v", s.Name(), ErrPanicked, r)
		}
	}()

	l := s.logger
	if s.id == "" {
		s.id = uuid.NewString()
	}

	if !s.disableLogo {
		if s.customLogo != "" {
			l.Info(s.customLogo)
		} else {
			l.Info(defaultLogo)
		}
	}

	supervisionTree := oversight.New(
		oversight.NeverHalt(),
		oversight.DefaultRestartStrategy(),
		oversight.WithLogger(log.NewSupervisionLogger(l)),
	)

	supervise := func(ctx context.Context, c chan error) {
		c <- supervisionTree.Start(ctx)
	}

	spawnProcs := func(ctx context.Context, c chan error) {
		configValue := reflect.ValueOf(s.config)
		for i := range configValue.NumField() {
			field := configValue.Field(i)
			if !field.IsValid() || !field.CanInterface() {
				continue
			}
			v := field.Interface()
			if v == nil {
				continue
			}
			svc, ok := v.(service.Service)
			if !ok {
				continue
			}
			if err := supervisionTree.Add(
				process.New(svc),
				oversight.Transient(),
				oversight.Timeout(s.timeout),
				svc.Name(),
			); err != nil {
				c <- fmt.Errorf("%w %s to tree: %w", ErrAddProcess, svc.Name(), err)
				return
			}
		}

		for _, svc := range s.extraServices {
			if err := supervisionTree.Add(
				process.New(svc),
				oversight.Transient(),
				oversight.Timeout(s.timeout),
				svc.Name(),
			); err != nil {
				c <- fmt.Errorf("%w %s to tree: %w", ErrAddProcess, svc.Name(), err)
				return
			}
		}
	}

	l.InfoContext(ctx, "starting supervised services", "service", s.name)
	return nursery.RunConcurrentlyWithContext(ctx, supervise, spawnProcs)
}
