// SPDX-License-Identifier: BSD-3-Clause

package hal

import "errors"

var (
	// ErrLoadConfig indicates the hardware TOML document failed to load.
	ErrLoadConfig = errors.New("load hardware config")
	// ErrBuildHAL indicates the HAL core failed to construct from config.
	ErrBuildHAL = errors.New("build hal")
	// ErrListenAndServe indicates the HTTP server exited abnormally.
	ErrListenAndServe = errors.New("listen and serve")
)
