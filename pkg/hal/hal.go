// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type thermometerEntry struct {
	name        string
	driver      Thermometer
	calibration *CalibrationTable
	mu          sync.Mutex // serializes access to a single, assumed non-reentrant driver
}

type heaterEntry struct {
	name     string
	driver   Heater
	maxValue float64
	mu       sync.Mutex
}

// HAL owns the device registry for one running process: every thermometer
// and heater constructed from a hardware configuration, plus the
// calibration tables they reference. Once constructed, the device map is
// read-only; only per-device state (behind each entry's own mutex) mutates.
type HAL struct {
	logger       *slog.Logger
	thermometers map[string]*thermometerEntry
	heaters      map[string]*heaterEntry
}

// New constructs a HAL from a hardware configuration and a driver registry.
// Every device's Setup is invoked synchronously; any failure aborts
// construction, matching the spec's "fatal for startup" contract.
func New(ctx context.Context, cfg *HardwareConfig, registry *Registry, logger *slog.Logger) (*HAL, error) {
	if logger == nil {
		logger = slog.Default()
	}

	h := &HAL{
		logger:       logger,
		thermometers: make(map[string]*thermometerEntry),
		heaters:      make(map[string]*heaterEntry),
	}

	cache := newCalibrationCache()

	for _, d := range cfg.Thermometers {
		if _, exists := h.thermometers[d.Name]; exists {
			return nil, fmt.Errorf("%w: thermometer %s", ErrDuplicateName, d.Name)
		}

		inst, err := registry.New(d.Hardware)
		if err != nil {
			return nil, err
		}
		therm, ok := inst.(Thermometer)
		if !ok {
			return nil, fmt.Errorf("%w: driver %s does not implement Thermometer", ErrUnknownDriver, d.Hardware)
		}
		if err := therm.Setup(SetupParams(d.Setup)); err != nil {
			return nil, fmt.Errorf("%w: thermometer %s: %w", ErrDeviceSetupFailed, d.Name, err)
		}

		var calib *CalibrationTable
		if d.ConversionCSV != "" {
			calib, err = cache.load(d.ConversionCSV)
			if err != nil {
				return nil, err
			}
		}

		h.thermometers[d.Name] = &thermometerEntry{name: d.Name, driver: therm, calibration: calib}
	}

	for _, d := range cfg.Heaters {
		if _, exists := h.heaters[d.Name]; exists {
			return nil, fmt.Errorf("%w: heater %s", ErrDuplicateName, d.Name)
		}
		if d.MaxValue < 0 {
			return nil, fmt.Errorf("%w: heater %s has negative max_value", ErrConfigMalformed, d.Name)
		}

		inst, err := registry.New(d.Hardware)
		if err != nil {
			return nil, err
		}
		heater, ok := inst.(Heater)
		if !ok {
			return nil, fmt.Errorf("%w: driver %s does not implement Heater", ErrUnknownDriver, d.Hardware)
		}
		if err := heater.Setup(SetupParams(d.Setup)); err != nil {
			return nil, fmt.Errorf("%w: heater %s: %w", ErrDeviceSetupFailed, d.Name, err)
		}

		h.heaters[d.Name] = &heaterEntry{name: d.Name, driver: heater, maxValue: d.MaxValue}
	}

	logger.InfoContext(ctx, "HAL constructed", "thermometers", len(h.thermometers), "heaters", len(h.heaters))

	return h, nil
}

// GetTemperature returns the converted reading for name, or an error if the
// device is unknown. A driver failure is logged and reported as a nil value
// with a nil error rather than propagated, per the HAL read-isolation
// contract.
func (h *HAL) GetTemperature(ctx context.Context, name string) (*float64, error) {
	entry, ok := h.thermometers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	entry.mu.Lock()
	raw, err := entry.driver.ReadTemperature()
	entry.mu.Unlock()

	if err != nil {
		h.logger.ErrorContext(ctx, "thermometer read failed", "name", name, "error", err)
		return nil, nil
	}

	value := raw
	if entry.calibration != nil {
		value = entry.calibration.Convert(raw)
	}
	return &value, nil
}

// GetTemperatures aggregates GetTemperature over every configured
// thermometer. A failing device contributes a nil value; it never aborts
// the aggregate.
func (h *HAL) GetTemperatures(ctx context.Context) map[string]*float64 {
	out := make(map[string]*float64, len(h.thermometers))
	for name := range h.thermometers {
		value, err := h.GetTemperature(ctx, name)
		if err != nil {
			// Unknown-name errors cannot occur here since name comes from
			// our own registry, but guard against it defensively.
			continue
		}
		out[name] = value
	}
	return out
}

// SetHeaterValue clamps v to [0, max_value(name)], logging a WARN if
// clamping occurred, then writes through the driver. Unknown names fail
// with ErrNotFound; driver failures propagate to the caller.
func (h *HAL) SetHeaterValue(ctx context.Context, name string, v float64) error {
	entry, ok := h.heaters[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	clamped := v
	if clamped > entry.maxValue {
		clamped = entry.maxValue
	}
	if clamped < 0 {
		clamped = 0
	}
	if clamped != v {
		h.logger.WarnContext(ctx, "heater write clamped", "name", name, "requested", v, "clamped", clamped, "max_value", entry.maxValue)
	}

	entry.mu.Lock()
	err := entry.driver.WriteValue(clamped)
	entry.mu.Unlock()

	if err != nil {
		h.logger.ErrorContext(ctx, "heater write failed", "name", name, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrDriverWrite, name, err)
	}
	return nil
}

// GetHeaterValue returns the heater's last reported output value. Unlike
// GetTemperature, driver failures are surfaced rather than swallowed.
func (h *HAL) GetHeaterValue(ctx context.Context, name string) (float64, error) {
	entry, ok := h.heaters[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	entry.mu.Lock()
	v, err := entry.driver.ReadValue()
	entry.mu.Unlock()

	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrDriverRead, name, err)
	}
	return v, nil
}

// GetHeaterValues aggregates GetHeaterValue over every configured heater.
// Unlike temperature aggregation, a single failing heater aborts the call,
// matching the spec's "does not catch" contract for heater reads.
func (h *HAL) GetHeaterValues(ctx context.Context) (map[string]float64, error) {
	out := make(map[string]float64, len(h.heaters))
	for name := range h.heaters {
		v, err := h.GetHeaterValue(ctx, name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// GetHeaterMaxValues returns the static per-heater bound table.
func (h *HAL) GetHeaterMaxValues() map[string]float64 {
	out := make(map[string]float64, len(h.heaters))
	for name, entry := range h.heaters {
		out[name] = entry.maxValue
	}
	return out
}

// HasThermometer reports whether name is a configured thermometer.
func (h *HAL) HasThermometer(name string) bool {
	_, ok := h.thermometers[name]
	return ok
}

// HasHeater reports whether name is a configured heater.
func (h *HAL) HasHeater(name string) bool {
	_, ok := h.heaters[name]
	return ok
}

// ThermometerNames returns the configured thermometer names.
func (h *HAL) ThermometerNames() []string {
	names := make([]string, 0, len(h.thermometers))
	for name := range h.thermometers {
		names = append(names, name)
	}
	return names
}

// HeaterNames returns the configured heater names.
func (h *HAL) HeaterNames() []string {
	names := make([]string, 0, len(h.heaters))
	for name := range h.heaters {
		names = append(names, name)
	}
	return names
}
