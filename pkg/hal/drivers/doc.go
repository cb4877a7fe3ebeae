// SPDX-License-Identifier: BSD-3-Clause

// Package drivers provides the concrete driver kinds registered into a
// hal.Registry: in-process test doubles (including deliberately faulty and
// laggy variants used for fault-injection testing) and hardware-backed
// drivers for sysfs (hwmon), GPIO, and Modbus TCP devices.
package drivers
