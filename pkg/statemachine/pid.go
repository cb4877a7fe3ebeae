// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"math"
	"time"

	"go.einride.tech/pid"
)

// heaterLoop is the live control state for one configured heater: a PID
// controller bound to exactly one corresponding thermometer, or a latched
// direct value. It is never recreated across state transitions, so a PID
// heater's integral term carries over from one state to the next.
type heaterLoop struct {
	cfg HeaterConfig

	controller   *pid.Controller
	setpoint     float64
	lastUpdate   time.Time
	currentValue float64
}

func newHeaterLoop(cfg HeaterConfig) *heaterLoop {
	h := &heaterLoop{cfg: cfg}
	if cfg.PID {
		h.controller = &pid.Controller{
			Config: pid.ControllerConfig{
				ProportionalGain: cfg.P,
				IntegralGain:     cfg.I,
				DerivativeGain:   cfg.D,
			},
		}
	}
	return h
}

// setSetpoint assigns the target value a PID heater's corresponding
// thermometer should be driven to. No-op for direct heaters.
func (h *heaterLoop) setSetpoint(v float64) {
	h.setpoint = v
}

// latch assigns the value a direct heater should hold until the next state
// transition or override latches something else. No-op for PID heaters.
func (h *heaterLoop) latch(v float64) {
	h.currentValue = v
}

// update advances a PID heater's controller by one tick given the latest
// thermometer reading and returns the clamped output. For direct heaters it
// returns the currently latched value unchanged.
func (h *heaterLoop) update(now time.Time, actualTemperature float64) float64 {
	if !h.cfg.PID {
		return h.currentValue
	}

	if h.lastUpdate.IsZero() {
		// With no earlier sample there is no interval to integrate or
		// differentiate over, so the first output is the proportional term
		// alone. Recording the error seeds the next tick's derivative.
		h.lastUpdate = now
		h.controller.State.ControlError = h.setpoint - actualTemperature
		output := math.Max(0, math.Min(h.cfg.MaxValue, h.cfg.P*h.controller.State.ControlError))
		h.currentValue = output
		return output
	}
	interval := now.Sub(h.lastUpdate)
	h.lastUpdate = now

	h.controller.Update(pid.ControllerInput{
		ReferenceSignal:  h.setpoint,
		ActualSignal:     actualTemperature,
		SamplingInterval: interval,
	})

	output := h.controller.State.ControlSignal
	output = math.Max(0, math.Min(h.cfg.MaxValue, output))
	h.currentValue = output
	return output
}
