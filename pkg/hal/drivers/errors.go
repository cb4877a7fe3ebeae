// SPDX-License-Identifier: BSD-3-Clause

package drivers

import "errors"

var (
	// ErrInjectedFault is returned by the faulty dummy drivers on the calls
	// they choose to fail (roughly one in ten).
	ErrInjectedFault = errors.New("injected driver fault")
	// ErrMissingSetupParam indicates a required setup parameter was absent or of the wrong type.
	ErrMissingSetupParam = errors.New("missing or invalid setup parameter")
)
