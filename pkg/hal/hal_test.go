// SPDX-License-Identifier: BSD-3-Clause

package hal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amccaugh/fridgeos/pkg/hal"
	"github.com/amccaugh/fridgeos/pkg/hal/drivers"
)

func testRegistry() *hal.Registry {
	reg := hal.NewRegistry()
	drivers.RegisterDummyDrivers(reg)
	return reg
}

// failingThermometer is a thermometer whose every read fails.
type failingThermometer struct{}

func (failingThermometer) Setup(hal.SetupParams) error { return nil }

func (failingThermometer) ReadTemperature() (float64, error) {
	return 0, errors.New("injected read failure")
}

// failingHeater is a heater whose every read-back fails.
type failingHeater struct{}

func (failingHeater) Setup(hal.SetupParams) error { return nil }

func (failingHeater) WriteValue(float64) error { return nil }

func (failingHeater) ReadValue() (float64, error) {
	return 0, errors.New("injected read failure")
}

func TestHALGetTemperature(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Thermometers: []hal.DeviceConfig{
			{Name: "cell_plate", Hardware: "DummyThermometer", Setup: map[string]any{"value": 12.5}},
		},
	}

	h, err := hal.New(context.Background(), cfg, testRegistry(), nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	v, err := h.GetTemperature(context.Background(), "cell_plate")
	if err != nil {
		t.Fatalf("GetTemperature: %v", err)
	}
	if v == nil || *v != 12.5 {
		t.Errorf("GetTemperature = %v, want 12.5", v)
	}
}

func TestHALGetTemperatureUnknownName(t *testing.T) {
	h, err := hal.New(context.Background(), &hal.HardwareConfig{}, testRegistry(), nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	if _, err := h.GetTemperature(context.Background(), "nope"); !errors.Is(err, hal.ErrNotFound) {
		t.Errorf("GetTemperature(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestHALDuplicateThermometerNameRejected(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Thermometers: []hal.DeviceConfig{
			{Name: "dup", Hardware: "DummyThermometer"},
			{Name: "dup", Hardware: "DummyThermometer"},
		},
	}

	if _, err := hal.New(context.Background(), cfg, testRegistry(), nil); !errors.Is(err, hal.ErrDuplicateName) {
		t.Errorf("hal.New with duplicate names error = %v, want ErrDuplicateName", err)
	}
}

func TestHALUnknownDriverKindFailsFast(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Thermometers: []hal.DeviceConfig{
			{Name: "ghost", Hardware: "NoSuchDriver"},
		},
	}

	if _, err := hal.New(context.Background(), cfg, testRegistry(), nil); !errors.Is(err, hal.ErrUnknownDriver) {
		t.Errorf("hal.New with unknown driver error = %v, want ErrUnknownDriver", err)
	}
}

func TestHALSetHeaterValueClampsToMax(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Heaters: []hal.DeviceConfig{
			{Name: "cell_heater", Hardware: "DummyHeater", MaxValue: 10},
		},
	}

	h, err := hal.New(context.Background(), cfg, testRegistry(), nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	if err := h.SetHeaterValue(context.Background(), "cell_heater", 55); err != nil {
		t.Fatalf("SetHeaterValue: %v", err)
	}
	v, err := h.GetHeaterValue(context.Background(), "cell_heater")
	if err != nil {
		t.Fatalf("GetHeaterValue: %v", err)
	}
	if v != 10 {
		t.Errorf("GetHeaterValue after over-range write = %v, want 10 (clamped)", v)
	}
}

func TestHALSetHeaterValueClampsNegativeToZero(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Heaters: []hal.DeviceConfig{
			{Name: "cell_heater", Hardware: "DummyHeater", MaxValue: 10},
		},
	}

	h, err := hal.New(context.Background(), cfg, testRegistry(), nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	if err := h.SetHeaterValue(context.Background(), "cell_heater", -5); err != nil {
		t.Fatalf("SetHeaterValue: %v", err)
	}
	v, err := h.GetHeaterValue(context.Background(), "cell_heater")
	if err != nil {
		t.Fatalf("GetHeaterValue: %v", err)
	}
	if v != 0 {
		t.Errorf("GetHeaterValue after negative write = %v, want 0 (clamped)", v)
	}
}

func TestHALGetTemperaturesIsolatesFaultyReader(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Thermometers: []hal.DeviceConfig{
			{Name: "good", Hardware: "DummyThermometer", Setup: map[string]any{"value": 3.0}},
			{Name: "bad", Hardware: "AlwaysFailingThermometer"},
		},
	}

	reg := testRegistry()
	reg.Register("AlwaysFailingThermometer", func() any { return failingThermometer{} })
	h, err := hal.New(context.Background(), cfg, reg, nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	temps := h.GetTemperatures(context.Background())
	if v := temps["good"]; v == nil || *v != 3.0 {
		t.Errorf("GetTemperatures()[good] = %v, want 3.0", v)
	}
	if v, ok := temps["bad"]; !ok || v != nil {
		t.Errorf("GetTemperatures()[bad] = %v (present=%v), want present with a nil value", v, ok)
	}
}

func TestHALGetHeaterValuesAbortsOnFailure(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Heaters: []hal.DeviceConfig{
			{Name: "missing_after_construction", Hardware: "DummyHeater", MaxValue: 5},
		},
	}

	h, err := hal.New(context.Background(), cfg, testRegistry(), nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	// Sanity: a HAL with only well-behaved heaters succeeds end to end.
	if _, err := h.GetHeaterValues(context.Background()); err != nil {
		t.Fatalf("GetHeaterValues: %v", err)
	}

	// One heater whose read-back fails aborts the whole aggregate.
	reg := testRegistry()
	reg.Register("AlwaysFailingHeater", func() any { return failingHeater{} })
	faulty, err := hal.New(context.Background(), &hal.HardwareConfig{
		Heaters: []hal.DeviceConfig{
			{Name: "good", Hardware: "DummyHeater", MaxValue: 5},
			{Name: "bad", Hardware: "AlwaysFailingHeater", MaxValue: 5},
		},
	}, reg, nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}
	if _, err := faulty.GetHeaterValues(context.Background()); !errors.Is(err, hal.ErrDriverRead) {
		t.Errorf("GetHeaterValues with a failing heater error = %v, want ErrDriverRead", err)
	}
}

func TestHALGetHeaterMaxValues(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Heaters: []hal.DeviceConfig{
			{Name: "a", Hardware: "DummyHeater", MaxValue: 5},
			{Name: "b", Hardware: "DummyHeater", MaxValue: 15},
		},
	}

	h, err := hal.New(context.Background(), cfg, testRegistry(), nil)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	max := h.GetHeaterMaxValues()
	if max["a"] != 5 || max["b"] != 15 {
		t.Errorf("GetHeaterMaxValues() = %v, want a=5 b=15", max)
	}
}

func TestHALNegativeMaxValueRejected(t *testing.T) {
	cfg := &hal.HardwareConfig{
		Heaters: []hal.DeviceConfig{
			{Name: "bad", Hardware: "DummyHeater", MaxValue: -1},
		},
	}

	if _, err := hal.New(context.Background(), cfg, testRegistry(), nil); !errors.Is(err, hal.ErrConfigMalformed) {
		t.Errorf("hal.New with negative max_value error = %v, want ErrConfigMalformed", err)
	}
}
