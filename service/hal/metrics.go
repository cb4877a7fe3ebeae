// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	temperatureReads *prometheus.CounterVec
	heaterWrites     *prometheus.CounterVec
	driverErrors     *prometheus.CounterVec
}

func newMetrics(registry *prometheus.Registry) *metrics {
	factory := promauto.With(registry)
	return &metrics{
		temperatureReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fridgeos_hal_temperature_reads_total",
			Help: "Total number of thermometer reads served by the HAL service, by device name.",
		}, []string{"name"}),
		heaterWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fridgeos_hal_heater_writes_total",
			Help: "Total number of heater value writes served by the HAL service, by device name.",
		}, []string{"name"}),
		driverErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fridgeos_hal_driver_errors_total",
			Help: "Total number of driver errors encountered, by device name and operation.",
		}, []string{"name", "operation"}),
	}
}
