// SPDX-License-Identifier: BSD-3-Clause

// Package hal implements the Hardware Abstraction Layer: a name-keyed
// registry of thermometer and heater devices, constructed from a TOML
// hardware configuration, exposing clamped heater writes and
// per-device failure isolation on aggregate reads.
package hal
