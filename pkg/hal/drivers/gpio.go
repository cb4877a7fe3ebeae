// SPDX-License-Identifier: BSD-3-Clause

package drivers

import (
	"fmt"

	"github.com/amccaugh/fridgeos/pkg/gpio"
	"github.com/amccaugh/fridgeos/pkg/hal"
)

// GPIOHeater is a binary on/off heater: any write above zero drives the
// line high, zero or below drives it low. max_value is expected to be 1 in
// hardware configs using this driver.
type GPIOHeater struct {
	chip string
	line int
	last float64
}

// Setup requires "chip" (string, e.g. "gpiochip0") and "line" (float64 line number).
func (g *GPIOHeater) Setup(params hal.SetupParams) error {
	chip, ok := params["chip"].(string)
	if !ok || chip == "" {
		return fmt.Errorf("%w: chip", ErrMissingSetupParam)
	}
	lineNum, ok := params["line"].(float64)
	if !ok {
		return fmt.Errorf("%w: line", ErrMissingSetupParam)
	}
	g.chip = chip
	g.line = int(lineNum)
	return nil
}

// WriteValue drives the line high for any positive value, low otherwise.
func (g *GPIOHeater) WriteValue(v float64) error {
	out := 0
	if v > 0 {
		out = 1
	}
	if err := gpio.WriteLine(g.chip, g.line, out); err != nil {
		return err
	}
	g.last = v
	return nil
}

// ReadValue reports the line's current value.
func (g *GPIOHeater) ReadValue() (float64, error) {
	v, err := gpio.ReadLine(g.chip, g.line)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

// RegisterGPIODrivers adds the GPIO-backed driver kind to reg.
func RegisterGPIODrivers(reg *hal.Registry) {
	reg.Register("gpio-heater", func() any { return &GPIOHeater{} })
}
