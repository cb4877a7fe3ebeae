// SPDX-License-Identifier: BSD-3-Clause

//go:build linux
// +build linux

// Package gpio requests and drives individual GPIO lines by chip and line
// number, the minimal surface FridgeOS's gpio-heater driver needs: set a
// line high or low, and read it back.
package gpio

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/warthog618/go-gpiocdev"
)

// WriteLine requests lineNumber on chip as an output, drives it to value (0
// or 1), and releases the line. The line is not held open between calls,
// matching a heater that is toggled occasionally rather than polled.
func WriteLine(chip string, lineNumber, value int) error {
	if lineNumber < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineNumber, lineNumber)
	}
	if value < 0 || value > 1 {
		return fmt.Errorf("%w: value must be 0 or 1", ErrInvalidValue)
	}

	line, err := gpiocdev.RequestLine(chip, lineNumber,
		gpiocdev.WithConsumer("fridgeos"), gpiocdev.AsOutput(value))
	if err != nil {
		return mapGpiocdevError(err, fmt.Sprintf("set line %d on chip %q", lineNumber, chip))
	}
	defer line.Close()

	return nil
}

// ReadLine requests lineNumber on chip as an input, reads its current value,
// and releases the line.
func ReadLine(chip string, lineNumber int) (int, error) {
	if lineNumber < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLineNumber, lineNumber)
	}

	line, err := gpiocdev.RequestLine(chip, lineNumber,
		gpiocdev.WithConsumer("fridgeos"), gpiocdev.AsInput)
	if err != nil {
		return 0, mapGpiocdevError(err, fmt.Sprintf("read line %d on chip %q", lineNumber, chip))
	}
	defer line.Close()

	value, err := line.Value()
	if err != nil {
		return 0, fmt.Errorf("%w: read line %d on chip %q: %w", ErrOperationFailed, lineNumber, chip, err)
	}

	return value, nil
}

// mapGpiocdevError maps gpiocdev/syscall errors to the package's sentinels.
func mapGpiocdevError(err error, details string) error {
	switch {
	case errors.Is(err, syscall.ENOENT):
		return fmt.Errorf("%w: %s", ErrLineNotFound, details)
	case errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, details)
	case errors.Is(err, gpiocdev.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrLineNotFound, details)
	default:
		return fmt.Errorf("%w: %s: %w", ErrOperationFailed, details, err)
	}
}
