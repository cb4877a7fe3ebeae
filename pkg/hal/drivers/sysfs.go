// SPDX-License-Identifier: BSD-3-Clause

package drivers

import (
	"context"
	"fmt"

	"github.com/amccaugh/fridgeos/pkg/hal"
	"github.com/amccaugh/fridgeos/pkg/hwmon"
)

// SysfsThermometer reads a millidegree-Celsius integer from a hwmon sysfs
// attribute (e.g. .../temp1_input) and reports it in degrees Celsius.
type SysfsThermometer struct {
	path string
}

// Setup requires a "path" string parameter naming the hwmon attribute file.
func (s *SysfsThermometer) Setup(params hal.SetupParams) error {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return fmt.Errorf("%w: path", ErrMissingSetupParam)
	}
	s.path = path
	return nil
}

// ReadTemperature reads the raw millidegree value and converts to Celsius.
func (s *SysfsThermometer) ReadTemperature() (float64, error) {
	milliC, err := hwmon.ReadAttr(context.Background(), s.path)
	if err != nil {
		return 0, err
	}
	return float64(milliC) / 1000.0, nil
}

// SysfsHeater drives a hwmon PWM-style output attribute as a heater.
type SysfsHeater struct {
	path string
	last float64
}

// Setup requires a "path" string parameter naming the hwmon attribute file.
func (s *SysfsHeater) Setup(params hal.SetupParams) error {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return fmt.Errorf("%w: path", ErrMissingSetupParam)
	}
	s.path = path
	return nil
}

// WriteValue writes v, rounded to the nearest integer, to the sysfs attribute.
func (s *SysfsHeater) WriteValue(v float64) error {
	if err := hwmon.WriteAttr(context.Background(), s.path, int(v+0.5)); err != nil {
		return err
	}
	s.last = v
	return nil
}

// ReadValue reads back the current integer value of the sysfs attribute.
func (s *SysfsHeater) ReadValue() (float64, error) {
	v, err := hwmon.ReadAttr(context.Background(), s.path)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

// RegisterSysfsDrivers adds the hwmon-backed driver kinds to reg.
func RegisterSysfsDrivers(reg *hal.Registry) {
	reg.Register("sysfs-thermometer", func() any { return &SysfsThermometer{} })
	reg.Register("sysfs-heater", func() any { return &SysfsHeater{} })
}
