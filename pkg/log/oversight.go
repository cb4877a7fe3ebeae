// SPDX-License-Identifier: BSD-3-Clause

package log

import (
	"fmt"
	"log/slog"

	"cirello.io/oversight/v2"
)

// NewSupervisionLogger adapts l to the oversight.Logger function type the
// supervisor's oversight tree logs restarts and child lifecycle events
// through. Messages land at Debug, under the "component=oversight" attribute,
// so a quiet console doesn't fill up with the tree's own bookkeeping.
func NewSupervisionLogger(l *slog.Logger) oversight.Logger {
	return func(args ...any) {
		l.Debug(fmt.Sprint(args...), "component", "oversight")
	}
}
