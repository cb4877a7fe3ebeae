// SPDX-License-Identifier: BSD-3-Clause

// Package hwmon reads and writes the integer sysfs attributes FridgeOS's
// sysfs-backed thermometer and heater drivers depend on (e.g.
// .../hwmon/hwmon0/temp1_input, .../pwm1).
package hwmon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// ReadAttr reads an integer value from the hwmon attribute at path, aborting
// if ctx is done before the (blocking) file read completes.
func ReadAttr(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	type result struct {
		value int
		err   error
	}
	done := make(chan result, 1)

	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			done <- result{0, mapFileError(err, path)}
			return
		}
		value, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			done <- result{0, fmt.Errorf("%w: failed to parse integer from %s: %w", ErrInvalidValue, path, err)}
			return
		}
		done <- result{value, nil}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %w", ErrOperationTimeout, ctx.Err())
	}
}

// WriteAttr writes an integer value to the hwmon attribute at path, aborting
// if ctx is done before the (blocking) file write completes.
func WriteAttr(ctx context.Context, path string, value int) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	done := make(chan error, 1)

	go func() {
		done <- mapFileError(os.WriteFile(path, []byte(strconv.Itoa(value)), 0o600), path)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrOperationTimeout, ctx.Err())
	}
}

// mapFileError maps OS file errors to the package's sentinels.
func mapFileError(err error, path string) error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if os.IsPermission(err) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	}
	var pe *os.PathError
	if errors.As(err, &pe) {
		var errno syscall.Errno
		if errors.As(pe.Err, &errno) && errno == syscall.EINVAL {
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, path, err)
		}
		switch pe.Op {
		case "read":
			return fmt.Errorf("%w: %s: %w", ErrReadFailure, path, err)
		case "write", "open":
			return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrReadFailure, path, err)
}
