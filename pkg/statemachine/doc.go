// SPDX-License-Identifier: BSD-3-Clause

// Package statemachine implements the FridgeOS control engine: a
// config-driven finite state machine that evaluates criteria-based
// transitions with timeouts, drives per-heater PID control loops against a
// HAL, and supports a PAUSED safe mode plus authenticated external
// overrides.
package statemachine
