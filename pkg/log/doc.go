// SPDX-License-Identifier: BSD-3-Clause

// Package log provides structured logging with multi-target output for both
// the HAL and state machine servers. Every logger is built around Go's
// standard library slog package and fans records out to: a human-readable
// console writer, the OpenTelemetry global logger provider, and (for
// NewComponentLogger) a set of size-rotated log files per severity level.
//
// # Basic Usage
//
//	logger := log.NewDefaultLogger()
//	logger.Info("HAL server starting", "port", 8001)
//
// # Rotated Component Logs
//
// NewComponentLogger gives one component its own named logger so that
// operators can tail that component's files without another's noise. The
// entrypoints under cmd/ do not call it: they log through NewDefaultLogger
// and write no log files. Log files rotate at 10MB by default and keep five
// backups, mirroring
// the original Python server's RotatingFileHandler configuration:
//
//	logger, err := log.NewComponentLogger(log.ComponentConfig{
//		Name:   "hal",
//		LogDir: "./hal_logs",
//		Debug:  true,
//	})
//
// This produces hal-info.log, hal-errors.log, and (because Debug is set)
// hal-debug.log under LogDir, in addition to console and OpenTelemetry output.
//
// # Supervision Logging
//
// NewSupervisionLogger adapts a *slog.Logger to the oversight.Logger function
// type expected by the supervision tree that runs the HAL and state machine
// services side by side.
//
// # Thread Safety
//
// All logger instances are safe for concurrent use from multiple goroutines.
package log
