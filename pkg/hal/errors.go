// SPDX-License-Identifier: BSD-3-Clause

package hal

import "errors"

var (
	// ErrConfigNotFound indicates the hardware configuration file could not be read.
	ErrConfigNotFound = errors.New("hardware config not found")
	// ErrConfigMalformed indicates the hardware configuration failed to parse.
	ErrConfigMalformed = errors.New("hardware config malformed")
	// ErrUnknownDriver indicates a configured driver kind has no registered constructor.
	ErrUnknownDriver = errors.New("unknown driver kind")
	// ErrDuplicateName indicates two devices were configured with the same name.
	ErrDuplicateName = errors.New("duplicate device name")
	// ErrDeviceSetupFailed indicates a driver's setup call failed during HAL construction.
	ErrDeviceSetupFailed = errors.New("device setup failed")
	// ErrNotFound indicates a request referenced an unknown device name.
	ErrNotFound = errors.New("device not found")
	// ErrDriverRead indicates a driver failed to produce a reading.
	ErrDriverRead = errors.New("driver read failed")
	// ErrDriverWrite indicates a driver failed to accept a write.
	ErrDriverWrite = errors.New("driver write failed")
	// ErrNullReading indicates a temperature reading is unavailable (driver failure).
	ErrNullReading = errors.New("temperature reading is null")
	// ErrCalibrationTable indicates a calibration table file could not be loaded or parsed.
	ErrCalibrationTable = errors.New("calibration table invalid")
)
