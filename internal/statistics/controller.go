package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	id     string
	source StateSource

	phase    *prometheus.Desc
	switchAt *prometheus.Desc
}

func NewControllerCollector(id string, source StateSource) *ControllerCollector {
	return &ControllerCollector{
		id:     id,
		source: source,
		phase: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "phase"),
			"Lifecycle phase of the controller (0: startup, 1: running, 2: shutting down, 3: terminated)",
			[]string{"id"}, nil,
		),
		switchAt: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "next_profile_switch_timestamp_seconds"),
			"Unix time at which the next cooling profile becomes active",
			[]string{"id", "next"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.phase
	ch <- collector.switchAt
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	state := collector.source.Snapshot()
	ch <- prometheus.MustNewConstMetric(collector.phase, prometheus.GaugeValue, float64(state.Phase), collector.id)
	if state.SwitchAt.IsZero() {
		return
	}
	ch <- prometheus.MustNewConstMetric(collector.switchAt, prometheus.GaugeValue, float64(state.SwitchAt.Unix()), collector.id, state.NextProfile)
}
