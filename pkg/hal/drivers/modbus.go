// SPDX-License-Identifier: BSD-3-Clause

package drivers

import (
	"fmt"
	"sync"
	"time"

	"github.com/amccaugh/fridgeos/pkg/hal"
	"github.com/simonvetter/modbus"
)

// ModbusHoldingRegister is a thermometer/heater driver backed by a single
// holding register on a Modbus TCP gateway. Reads and writes are scaled by
// a fixed divisor so a raw uint16 register can represent a fractional
// physical quantity (e.g. register value 512 with scale 100 → 5.12).
type ModbusHoldingRegister struct {
	mu       sync.Mutex
	client   *modbus.ModbusClient
	register uint16
	scale    float64
	last     float64
}

// Setup requires "url" (e.g. "tcp://10.0.0.5:502"), "register" (float64
// register address), "unit_id" (float64, Modbus slave id), and accepts an
// optional "scale" divisor (defaults to 1.0).
func (m *ModbusHoldingRegister) Setup(params hal.SetupParams) error {
	url, ok := params["url"].(string)
	if !ok || url == "" {
		return fmt.Errorf("%w: url", ErrMissingSetupParam)
	}
	reg, ok := params["register"].(float64)
	if !ok {
		return fmt.Errorf("%w: register", ErrMissingSetupParam)
	}
	unitID, ok := params["unit_id"].(float64)
	if !ok {
		return fmt.Errorf("%w: unit_id", ErrMissingSetupParam)
	}
	m.scale = 1.0
	if s, ok := params["scale"].(float64); ok && s != 0 {
		m.scale = s
	}

	client, err := modbus.NewClient(&modbus.ClientConfiguration{
		URL:     url,
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create modbus client: %w", err)
	}
	if err := client.SetUnitId(uint8(unitID)); err != nil {
		return fmt.Errorf("set modbus unit id: %w", err)
	}
	if err := client.Open(); err != nil {
		return fmt.Errorf("open modbus connection: %w", err)
	}

	m.client = client
	m.register = uint16(reg)
	return nil
}

// ReadTemperature reads the holding register and scales it to a physical value.
func (m *ModbusHoldingRegister) ReadTemperature() (float64, error) {
	return m.readScaled()
}

// WriteValue scales v by the configured factor and writes the holding register.
func (m *ModbusHoldingRegister) WriteValue(v float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := uint16(v * m.scale)
	if err := m.client.WriteRegister(m.register, raw); err != nil {
		return err
	}
	m.last = v
	return nil
}

// ReadValue reads the holding register back and scales it to a physical value.
func (m *ModbusHoldingRegister) ReadValue() (float64, error) {
	return m.readScaled()
}

func (m *ModbusHoldingRegister) readScaled() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	regs, err := m.client.ReadRegisters(m.register, 1, modbus.HOLDING_REGISTER)
	if err != nil {
		return 0, err
	}
	return float64(regs[0]) / m.scale, nil
}

// RegisterModbusDrivers adds the Modbus-backed driver kind to reg.
func RegisterModbusDrivers(reg *hal.Registry) {
	reg.Register("modbus-holding-register", func() any { return &ModbusHoldingRegister{} })
}
