// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import "errors"

var (
	// ErrConfigNotFound indicates the SM configuration file could not be read.
	ErrConfigNotFound = errors.New("state machine config not found")
	// ErrConfigMalformed indicates the SM configuration failed to parse.
	ErrConfigMalformed = errors.New("state machine config malformed")
	// ErrUnresolvedConstant indicates a criterion or target referenced a name that is not a known constant.
	ErrUnresolvedConstant = errors.New("unresolved constant")
	// ErrUnknownState indicates a transition or request referenced a state that does not exist.
	// SetHeaterValueDirect also returns it for a heater name that is not configured.
	ErrUnknownState = errors.New("unknown state")
	// ErrUnknownThermometer indicates a PID heater's corresponding_thermometer does not resolve in the HAL.
	ErrUnknownThermometer = errors.New("unknown corresponding thermometer")
	// ErrInvalidCriterion indicates a transition criterion string could not be parsed.
	ErrInvalidCriterion = errors.New("invalid criterion")
	// ErrNotPaused indicates resume was requested while not in the PAUSED state.
	ErrNotPaused = errors.New("not paused")
	// ErrBadPassword indicates a state-change request supplied the wrong password.
	ErrBadPassword = errors.New("bad password")
)
