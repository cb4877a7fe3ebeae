// SPDX-License-Identifier: BSD-3-Clause

// Package client provides thin, typed HTTP clients for the HAL and state
// machine services, mirroring the original process's own in-process client
// helpers one layer up as real network calls.
package client
