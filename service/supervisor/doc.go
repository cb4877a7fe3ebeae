// SPDX-License-Identifier: BSD-3-Clause

// Package supervisor provides the top-level daemon that supervises the HAL
// and state machine services in a fault-tolerant manner, restarting either
// on failure without bringing down the other.
package supervisor
