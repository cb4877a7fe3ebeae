// SPDX-License-Identifier: BSD-3-Clause

package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/amccaugh/fridgeos/service"
)

type fakeService struct {
	name string
	ran  chan struct{}
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Run(ctx context.Context) error {
	if f.ran != nil {
		close(f.ran)
	}
	<-ctx.Done()
	return nil
}

func TestSupervisorDefaults(t *testing.T) {
	s := New()
	if s.Name() != "supervisor" {
		t.Errorf("Name() = %q, want supervisor", s.Name())
	}
	if s.HAL == nil || s.StateMachine == nil {
		t.Error("expected default HAL and StateMachine services to be set")
	}
}

func TestSupervisorOptionsApply(t *testing.T) {
	extra := &fakeService{name: "extra"}
	s := New(
		WithName("test-supervisor"),
		WithTimeout(2*time.Second),
		WithDisableLogo(true),
		WithExtraServices(extra),
	)

	if s.Name() != "test-supervisor" {
		t.Errorf("Name() = %q, want test-supervisor", s.Name())
	}
	if s.timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", s.timeout)
	}
	if !s.disableLogo {
		t.Error("disableLogo = false, want true")
	}
	if len(s.extraServices) != 1 || s.extraServices[0].Name() != "extra" {
		t.Errorf("extraServices = %v, want [extra]", s.extraServices)
	}
}

func TestSupervisorRunRejectsEmptyName(t *testing.T) {
	s := New(WithName(""))
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected an error for an empty supervisor name")
	}
}

func TestSupervisorRunStartsServicesAndStopsOnCancel(t *testing.T) {
	halRan := make(chan struct{})
	smRan := make(chan struct{})

	s := New(
		WithName("wired-test"),
		WithDisableLogo(true),
		WithTimeout(time.Second),
		WithExtraServices(
			&fakeService{name: "hal-stub", ran: halRan},
			&fakeService{name: "sm-stub", ran: smRan},
		),
	)
	// Swap the reflection-wired default HAL/StateMachine for no-op stand-ins
	// so this test doesn't try to open real hardware or HTTP listeners.
	s.HAL = &fakeService{name: "hal"}
	s.StateMachine = &fakeService{name: "statemachine"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-halRan:
	case <-time.After(2 * time.Second):
		t.Fatal("extra hal-stub service was never started")
	}
	select {
	case <-smRan:
	case <-time.After(2 * time.Second):
		t.Fatal("extra sm-stub service was never started")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

var _ service.Service = (*fakeService)(nil)
