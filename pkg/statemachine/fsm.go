// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// HALClient is the subset of HAL surface the engine needs to drive its tick.
// Production callers pass pkg/client's HTTP-backed implementation; tests
// pass a fake.
type HALClient interface {
	GetTemperatures(ctx context.Context) (map[string]*float64, error)
	GetHeaterValues(ctx context.Context) (map[string]float64, error)
	SetHeaterValue(ctx context.Context, name string, value float64) error
}

// Engine is the live control loop: current state, per-heater PID/direct
// loops, and the most recent HAL snapshot. All exported methods are safe
// for concurrent use.
type Engine struct {
	logger *slog.Logger
	hal    HALClient
	cfg    *Config

	mu                    sync.Mutex
	currentState          string
	stateEntryTime        time.Time
	currentTemperatures   map[string]*float64
	currentHeaterValues   map[string]float64
	lastTemperatureUpdate time.Time
	updateNum             int
	heaters               map[string]*heaterLoop
}

// New builds an Engine in cfg's initial state and applies that state's
// heater setpoints, matching the original's eager setpoint assignment at
// construction time.
func New(cfg *Config, hal HALClient, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	heaters := make(map[string]*heaterLoop, len(cfg.Heaters))
	for name, hc := range cfg.Heaters {
		heaters[name] = newHeaterLoop(hc)
	}

	e := &Engine{
		logger:                logger,
		hal:                   hal,
		cfg:                   cfg,
		currentState:          cfg.InitialState,
		stateEntryTime:        time.Now(),
		currentTemperatures:   map[string]*float64{},
		currentHeaterValues:   map[string]float64{},
		lastTemperatureUpdate: time.Now(),
		heaters:               heaters,
	}
	e.updateHeaterSetpointsLocked(cfg.InitialState)
	return e
}

// ValidatePassword reports whether provided satisfies the configured
// state-change password gate. A nil requirement (StateChangePassword
// unset) always validates; a configured requirement rejects a missing
// password and otherwise compares in constant time.
func (e *Engine) ValidatePassword(provided *string) bool {
	if e.cfg.StateChangePassword == "" {
		return true
	}
	if provided == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*provided), []byte(e.cfg.StateChangePassword)) == 1
}

// RequiresPassword reports whether a state-change password is configured.
func (e *Engine) RequiresPassword() bool {
	return e.cfg.StateChangePassword != ""
}

// Config returns the engine's resolved configuration. The returned value is
// never mutated after load and is safe to share across goroutines.
func (e *Engine) Config() *Config {
	return e.cfg
}

// HeaterNames returns the configured heater names. The heater set itself
// never changes after construction, so this is safe without locking.
func (e *Engine) HeaterNames() []string {
	names := make([]string, 0, len(e.heaters))
	for name := range e.heaters {
		names = append(names, name)
	}
	return names
}

// CurrentState returns the active state name.
func (e *Engine) CurrentState() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentState
}

// StateEntryTime returns when the current state was entered.
func (e *Engine) StateEntryTime() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateEntryTime
}

// StateNames returns the configured states, including the synthetic PAUSED
// state, in declaration order.
func (e *Engine) StateNames() []string {
	return append([]string(nil), e.cfg.StateOrder...)
}

// StateTargets returns the configured target map for a state.
func (e *Engine) StateTargets(name string) (map[string]float64, bool) {
	t, ok := e.cfg.States[name]
	return t, ok
}

// Snapshot is a consistent, point-in-time view of the engine used to render
// the /info and /state surfaces.
type Snapshot struct {
	CurrentState             string
	StateEntryTime            time.Time
	CurrentTemperatures       map[string]*float64
	CurrentHeaterValues       map[string]float64
	CurrentStateTargets       map[string]float64
	LastTemperatureUpdate     time.Time
	UpdateNum                 int
}

// Snapshot returns a copy of the engine's current externally visible state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		CurrentState:          e.currentState,
		StateEntryTime:        e.stateEntryTime,
		CurrentTemperatures:   copyTemperatures(e.currentTemperatures),
		CurrentHeaterValues:   copyHeaterValues(e.currentHeaterValues),
		CurrentStateTargets:   e.cfg.States[e.currentState],
		LastTemperatureUpdate: e.lastTemperatureUpdate,
		UpdateNum:             e.updateNum,
	}
}

func copyTemperatures(m map[string]*float64) map[string]*float64 {
	out := make(map[string]*float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyHeaterValues(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MakeTransition forces a transition to newState, rejecting unknown states.
// It does not reset any PID heater's accumulated integral term.
func (e *Engine) MakeTransition(newState string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.makeTransitionLocked(newState)
}

func (e *Engine) makeTransitionLocked(newState string) error {
	if _, ok := e.cfg.States[newState]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, newState)
	}
	e.logger.Info("transitioning", "from", e.currentState, "to", newState)
	e.currentState = newState
	e.stateEntryTime = time.Now()
	e.updateHeaterSetpointsLocked(newState)
	return nil
}

func (e *Engine) updateHeaterSetpointsLocked(newState string) {
	if newState == "PAUSED" {
		e.logger.Info("PAUSED state activated, heater setpoints left unchanged")
		return
	}
	targets := e.cfg.States[newState]
	for name, loop := range e.heaters {
		if loop.cfg.PID {
			v, ok := targets[loop.cfg.CorrespondingThermometer]
			if !ok {
				e.logger.Warn("no setpoint for thermometer in state",
					"thermometer", loop.cfg.CorrespondingThermometer, "state", newState, "heater", name)
				continue
			}
			loop.setSetpoint(v)
		} else {
			v, ok := targets[name]
			if !ok {
				e.logger.Warn("no value for direct heater in state", "heater", name, "state", newState)
				continue
			}
			loop.latch(v)
		}
	}
}

// PauseSystem transitions to PAUSED, or is a no-op if already there.
func (e *Engine) PauseSystem() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.currentState == "PAUSED" {
		return nil
	}
	return e.makeTransitionLocked("PAUSED")
}

// ResumeSystem transitions out of PAUSED to targetState, or to the first
// declared non-PAUSED state when targetState is empty. Returns
// ErrNotPaused if the engine is not currently paused.
func (e *Engine) ResumeSystem(targetState string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.currentState != "PAUSED" {
		return ErrNotPaused
	}
	if targetState == "" {
		for _, s := range e.cfg.StateOrder {
			if s != "PAUSED" {
				targetState = s
				break
			}
		}
		if targetState == "" {
			return fmt.Errorf("%w: no states to resume to", ErrUnknownState)
		}
	}
	return e.makeTransitionLocked(targetState)
}

// SetHeaterValueDirect writes value through the HAL immediately and records
// it in CurrentHeaterValues. It does not latch value into a direct heater's
// per-tick current_value, so the next tick overwrites it with whatever the
// active state (or the last transition) latched.
func (e *Engine) SetHeaterValueDirect(ctx context.Context, name string, value float64) error {
	e.mu.Lock()
	_, known := e.heaters[name]
	e.mu.Unlock()
	if !known {
		return fmt.Errorf("%w: heater %q", ErrUnknownState, name)
	}

	if err := e.hal.SetHeaterValue(ctx, name, value); err != nil {
		return err
	}

	e.mu.Lock()
	e.currentHeaterValues[name] = value
	e.mu.Unlock()
	return nil
}

func (e *Engine) checkCriterion(temps map[string]*float64, c Criterion) bool {
	reading, ok := temps[c.Sensor]
	if !ok {
		e.logger.Error("no sensor in temperature listing", "sensor", c.Sensor)
		return false
	}
	if reading == nil {
		e.logger.Error("sensor returned null value", "sensor", c.Sensor)
		return false
	}
	switch c.Op {
	case OpLess:
		return *reading < c.Value
	case OpGreater:
		return *reading > c.Value
	default:
		return false
	}
}

// checkTransitions evaluates transitions against temps (a single snapshot
// shared with the tick's heater update) and returns the first one whose
// criteria are all satisfied, or whose timeout has elapsed. PAUSED accepts
// only manual transitions and is never left automatically.
func (e *Engine) checkTransitions(temps map[string]*float64) *Transition {
	e.mu.Lock()
	currentState := e.currentState
	stateEntryTime := e.stateEntryTime
	e.mu.Unlock()

	if currentState == "PAUSED" {
		return nil
	}

	now := time.Now()
	for i := range e.cfg.Transitions {
		t := &e.cfg.Transitions[i]
		if !containsState(t.From, currentState) {
			continue
		}

		allMet := true
		for _, c := range t.Criteria {
			if !e.checkCriterion(temps, c) {
				allMet = false
				break
			}
		}
		if allMet {
			return t
		}

		for _, from := range t.From {
			if from != currentState {
				continue
			}
			if timeout, ok := e.cfg.StateTimeouts[stateTransitionKey{From: from, To: t.To}]; ok {
				if now.Sub(stateEntryTime) > timeout {
					return t
				}
			}
		}
	}
	return nil
}

func containsState(states []string, s string) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}

// attemptTransition checks for a satisfied transition and, if found, fires
// it. Returns whether a transition was taken.
func (e *Engine) attemptTransition(temps map[string]*float64) bool {
	t := e.checkTransitions(temps)
	if t == nil {
		return false
	}
	e.mu.Lock()
	err := e.makeTransitionLocked(t.To)
	e.mu.Unlock()
	if err != nil {
		e.logger.Error("transition rejected", "to", t.To, "error", err)
		return false
	}
	return true
}

// updateHeaters applies temps (the tick's shared snapshot) to every PID
// heater, writes every heater's resulting value through the HAL, and
// refreshes the engine's notion of the HAL's actual heater values. It is a
// no-op for the heater-write step while PAUSED.
func (e *Engine) updateHeaters(ctx context.Context, temps map[string]*float64) {
	e.mu.Lock()
	e.currentTemperatures = temps
	e.lastTemperatureUpdate = time.Now()
	e.mu.Unlock()

	halValues, err := e.hal.GetHeaterValues(ctx)
	if err != nil {
		e.logger.Error("failed to read heater values from HAL", "error", err)
	} else {
		e.mu.Lock()
		for name, v := range halValues {
			e.currentHeaterValues[name] = v
		}
		e.mu.Unlock()
	}

	e.mu.Lock()
	e.updateNum++
	paused := e.currentState == "PAUSED"
	e.mu.Unlock()
	if paused {
		return
	}

	now := time.Now()
	for name, loop := range e.heaters {
		var newValue float64
		if loop.cfg.PID {
			reading, ok := temps[loop.cfg.CorrespondingThermometer]
			if !ok || reading == nil {
				e.logger.Error("no usable temperature for PID heater",
					"heater", name, "thermometer", loop.cfg.CorrespondingThermometer)
				continue
			}
			newValue = loop.update(now, *reading)
		} else {
			newValue = loop.currentValue
		}

		if err := e.hal.SetHeaterValue(ctx, name, newValue); err != nil {
			e.logger.Error("failed to write heater value", "heater", name, "error", err)
			continue
		}
		e.mu.Lock()
		e.currentHeaterValues[name] = newValue
		e.mu.Unlock()
	}
}

// Run drives the tick loop at cfg.PollingInterval until ctx is canceled.
// Any error within a tick is logged and swallowed; the loop never exits
// early because of one.
func (e *Engine) Run(ctx context.Context) {
	e.logger.Info("starting state machine loop", "interval", e.cfg.PollingInterval)
	ticker := time.NewTicker(e.cfg.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("state machine loop stopping")
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

func (e *Engine) tick(ctx context.Context) {
	temps, err := e.hal.GetTemperatures(ctx)
	if err != nil {
		e.logger.Error("exception in state machine loop", "error", err)
		return
	}

	e.attemptTransition(temps)
	e.updateHeaters(ctx, temps)
}
