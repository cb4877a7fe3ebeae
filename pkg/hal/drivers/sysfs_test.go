// SPDX-License-Identifier: BSD-3-Clause

package drivers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amccaugh/fridgeos/pkg/hal"
)

func TestSysfsThermometerSetupRequiresPath(t *testing.T) {
	therm := &SysfsThermometer{}
	if err := therm.Setup(hal.SetupParams{}); err == nil {
		t.Fatal("expected error for missing path parameter, got nil")
	}
}

func TestSysfsThermometerReadsMillidegrees(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp1_input")
	if err := os.WriteFile(path, []byte("23500\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	therm := &SysfsThermometer{}
	if err := therm.Setup(hal.SetupParams{"path": path}); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	v, err := therm.ReadTemperature()
	if err != nil {
		t.Fatalf("ReadTemperature: %v", err)
	}
	if v != 23.5 {
		t.Errorf("ReadTemperature() = %v, want 23.5", v)
	}
}

func TestSysfsHeaterWriteThenReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pwm1")
	if err := os.WriteFile(path, []byte("0\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	heater := &SysfsHeater{}
	if err := heater.Setup(hal.SetupParams{"path": path}); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	if err := heater.WriteValue(128); err != nil {
		t.Fatalf("WriteValue: %v", err)
	}

	v, err := heater.ReadValue()
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	if v != 128 {
		t.Errorf("ReadValue() = %v, want 128", v)
	}
}

func TestRegisterSysfsDrivers(t *testing.T) {
	reg := hal.NewRegistry()
	RegisterSysfsDrivers(reg)

	for _, kind := range []string{"sysfs-thermometer", "sysfs-heater"} {
		if _, err := reg.New(kind); err != nil {
			t.Errorf("registry missing kind %q: %v", kind, err)
		}
	}
}
