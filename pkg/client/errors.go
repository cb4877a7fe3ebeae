// SPDX-License-Identifier: BSD-3-Clause

package client

import "errors"

var (
	// ErrNotFound maps a 404 response from either service.
	ErrNotFound = errors.New("not found")
	// ErrNullReading maps a 422 response from a temperature read.
	ErrNullReading = errors.New("null reading")
	// ErrUnauthorized maps a 401 response.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest maps a 400 response.
	ErrBadRequest = errors.New("bad request")
	// ErrServer maps a 5xx response.
	ErrServer = errors.New("server error")
)
