// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/canonical/provisioning-service/internal/logging"
	"github.com/canonical/provisioning-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(labels map[string]string, value float64) error {
	metric, err := m.responseTime.GetMetricWith(labels)
	if err != nil {
		return err
	}

	metric.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(labels map[string]string, value float64) error {
	metric, err := m.dependencyAvailability.GetMetricWith(labels)
	if err != nil {
		return err
	}

	metric.Set(value)
	return nil
}

func (m *Monitor) registerMetrics() {
	m.responseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "Duration of HTTP requests.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailability = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "Availability of downstream dependencies, 1 up 0 down.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
