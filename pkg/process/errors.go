// SPDX-License-Identifier: BSD-3-Clause

package process

import "errors"

var (
	// ErrServicePanic indicates a service panicked during execution.
	ErrServicePanic = errors.New("service panicked during execution")
	// ErrServiceTimeout indicates a service operation timed out.
	ErrServiceTimeout = errors.New("service operation timed out")
	// ErrInvalidService indicates an invalid or nil service was provided.
	ErrInvalidService = errors.New("invalid service provided")
)
