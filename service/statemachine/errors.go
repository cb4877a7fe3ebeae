// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import "errors"

var (
	// ErrLoadConfig indicates the state machine TOML document failed to load.
	ErrLoadConfig = errors.New("load state machine config")
	// ErrListenAndServe indicates the HTTP server exited abnormally.
	ErrListenAndServe = errors.New("listen and serve")
)
