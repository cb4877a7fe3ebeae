// SPDX-License-Identifier: BSD-3-Clause

// Package statemachine implements the state machine service: a
// service.Service that loads a control-engine TOML document, drives the
// engine's tick loop against a remote HAL service, and exposes inspection,
// control, and browser-friendly HTML surfaces over HTTP.
package statemachine
