// SPDX-License-Identifier: BSD-3-Clause

// Package hal implements the HAL REST service: a service.Service that
// loads a hardware TOML document, builds the HAL core around it, and
// exposes temperature and heater operations over HTTP.
package hal
