// SPDX-License-Identifier: BSD-3-Clause

package hwmon

import "errors"

var (
	// ErrInvalidPath indicates that the provided hwmon attribute path is empty.
	ErrInvalidPath = errors.New("invalid hwmon path")
	// ErrFileNotFound indicates that the specified hwmon attribute file does not exist.
	ErrFileNotFound = errors.New("hwmon file not found")
	// ErrPermissionDenied indicates that access to the hwmon attribute was denied.
	ErrPermissionDenied = errors.New("permission denied accessing hwmon file")
	// ErrInvalidValue indicates that the attribute's contents could not be parsed as an integer.
	ErrInvalidValue = errors.New("invalid hwmon value")
	// ErrReadFailure indicates that reading the attribute failed for a reason other than the above.
	ErrReadFailure = errors.New("hwmon read failure")
	// ErrWriteFailure indicates that writing the attribute failed for a reason other than the above.
	ErrWriteFailure = errors.New("hwmon write failure")
	// ErrOperationTimeout indicates that the attribute read/write did not complete before ctx was done.
	ErrOperationTimeout = errors.New("hwmon operation timeout")
)
