// SPDX-License-Identifier: BSD-3-Clause

package statemachine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	transitionsTotal *prometheus.CounterVec
	authFailures     prometheus.Counter
}

func newMetrics(registry *prometheus.Registry) *metrics {
	factory := promauto.With(registry)
	return &metrics{
		transitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fridgeos_statemachine_transitions_total",
			Help: "Total number of state transitions, by destination state.",
		}, []string{"to"}),
		authFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fridgeos_statemachine_auth_failures_total",
			Help: "Total number of rejected state-change requests due to a missing or bad password.",
		}),
	}
}
