// SPDX-License-Identifier: BSD-3-Clause

package process

import (
	"context"
	"fmt"

	"cirello.io/oversight/v2"
	"github.com/amccaugh/fridgeos/service"
)

// New creates a new oversight.ChildProcess that wraps a service.Service.
// The returned function runs the service with the provided context and
// recovers from any panics, converting them to errors that include the
// service name for better debugging.
func New(s service.Service) oversight.ChildProcess {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panicked: %v", s.Name(), r)
			}
		}()

		return s.Run(ctx)
	}
}
