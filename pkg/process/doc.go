// SPDX-License-Identifier: BSD-3-Clause

// Package process bridges service.Service implementations into an oversight
// supervision tree. New wraps a service in an oversight.ChildProcess that
// recovers panics and turns them into errors tagged with the service name,
// so a single misbehaving service can be restarted without the rest of the
// supervision tree going down with it.
//
//	svc := &halsvc.Service{}
//	tree.Add(process.New(svc), oversight.Transient(), oversight.Timeout(10*time.Second), svc.Name())
package process
