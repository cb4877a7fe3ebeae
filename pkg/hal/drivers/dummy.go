// SPDX-License-Identifier: BSD-3-Clause

package drivers

import (
	"math/rand"
	"time"

	"github.com/amccaugh/fridgeos/pkg/hal"
)

// DummyThermometer always reports a stable synthetic temperature. It is
// useful for scenario tests that need a predictable reading.
type DummyThermometer struct {
	value float64
}

// Setup accepts an optional "value" parameter as the fixed reading to report.
func (d *DummyThermometer) Setup(params hal.SetupParams) error {
	d.value = 5.0
	if v, ok := params["value"]; ok {
		if f, ok := v.(float64); ok {
			d.value = f
		}
	}
	return nil
}

// ReadTemperature returns the configured fixed value.
func (d *DummyThermometer) ReadTemperature() (float64, error) {
	return d.value, nil
}

// FaultyDummyThermometer reports a small-jitter reading around 5.0, but
// throws on roughly 10% of calls, used to exercise the HAL's per-device
// read isolation contract.
type FaultyDummyThermometer struct{}

// Setup is a no-op; FaultyDummyThermometer needs no parameters.
func (d *FaultyDummyThermometer) Setup(_ hal.SetupParams) error {
	return nil
}

// ReadTemperature fails roughly 10% of the time.
func (d *FaultyDummyThermometer) ReadTemperature() (float64, error) {
	if rand.Float64() < 0.1 {
		return 0, ErrInjectedFault
	}
	return 5 + rand.Float64()*0.1, nil
}

// LaggyDummyThermometer simulates a slow instrument by blocking before
// returning a reading, exercising HAL read-path timeouts/latency.
type LaggyDummyThermometer struct {
	delay time.Duration
}

// Setup accepts an optional "delay_seconds" parameter; defaults to 7s to
// match the reference instrument's worst-case response time.
func (d *LaggyDummyThermometer) Setup(params hal.SetupParams) error {
	d.delay = 7 * time.Second
	if v, ok := params["delay_seconds"]; ok {
		if f, ok := v.(float64); ok {
			d.delay = time.Duration(f * float64(time.Second))
		}
	}
	return nil
}

// ReadTemperature sleeps for the configured delay before returning.
func (d *LaggyDummyThermometer) ReadTemperature() (float64, error) {
	time.Sleep(d.delay)
	return 7 + rand.Float64()*0.1, nil
}

// DummyHeater stores the last value written and reports it back.
type DummyHeater struct {
	value float64
}

// Setup is a no-op; DummyHeater needs no parameters.
func (d *DummyHeater) Setup(_ hal.SetupParams) error {
	return nil
}

// WriteValue records the requested output value.
func (d *DummyHeater) WriteValue(v float64) error {
	d.value = v
	return nil
}

// ReadValue returns the last written value.
func (d *DummyHeater) ReadValue() (float64, error) {
	return d.value, nil
}

// FaultyDummyHeater behaves like DummyHeater but fails roughly 10% of
// writes, used to exercise HAL write-failure propagation.
type FaultyDummyHeater struct {
	value float64
}

// Setup is a no-op; FaultyDummyHeater needs no parameters.
func (d *FaultyDummyHeater) Setup(_ hal.SetupParams) error {
	return nil
}

// WriteValue fails roughly 10% of the time, otherwise records v.
func (d *FaultyDummyHeater) WriteValue(v float64) error {
	if rand.Float64() < 0.1 {
		return ErrInjectedFault
	}
	d.value = v
	return nil
}

// ReadValue returns the last successfully written value.
func (d *FaultyDummyHeater) ReadValue() (float64, error) {
	return d.value, nil
}

// RegisterDummyDrivers adds the dummy/faulty/laggy driver kinds to reg,
// using the same registry keys as the reference implementation's driver
// table so existing hardware configs referencing them keep working.
func RegisterDummyDrivers(reg *hal.Registry) {
	reg.Register("DummyThermometer", func() any { return &DummyThermometer{} })
	reg.Register("FaultyDummyThermometer", func() any { return &FaultyDummyThermometer{} })
	reg.Register("LaggyDummyThermometer", func() any { return &LaggyDummyThermometer{} })
	reg.Register("DummyHeater", func() any { return &DummyHeater{} })
	reg.Register("FaultyDummyHeater", func() any { return &FaultyDummyHeater{} })
}
