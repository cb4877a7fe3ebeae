// SPDX-License-Identifier: BSD-3-Clause

//go:build linux
// +build linux

package gpio

import "errors"

var (
	// ErrInvalidLineNumber indicates that the provided line number is invalid for the chip.
	ErrInvalidLineNumber = errors.New("invalid GPIO line number")
	// ErrInvalidValue indicates that an invalid value was provided for a GPIO write.
	ErrInvalidValue = errors.New("invalid GPIO value")
	// ErrLineNotFound indicates that the requested GPIO chip/line could not be opened.
	ErrLineNotFound = errors.New("GPIO line not found")
	// ErrPermissionDenied indicates insufficient permissions to access the GPIO chip.
	ErrPermissionDenied = errors.New("permission denied for GPIO operation")
	// ErrOperationFailed indicates a request or read/write failure not covered above.
	ErrOperationFailed = errors.New("GPIO operation failed")
)
