package statistics

import (
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemProfile = "profile"

type ProfileCollector struct {
	source StateSource
	active *prometheus.Desc
}

func NewProfileCollector(source StateSource) *ProfileCollector {
	return &ProfileCollector{
		source: source,
		active: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemProfile, "active"),
			"Whether the cooling profile is currently active",
			[]string{"profile"}, nil,
		),
	}
}

func (collector *ProfileCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.active
}

// Collect implements required collect function for all prometheus collectors
func (collector *ProfileCollector) Collect(ch chan<- prometheus.Metric) {
	active := collector.source.Snapshot().ActiveProfile
	for _, name := range curves.ProfileNames() {
		value := 0.0
		if name == active {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(collector.active, prometheus.GaugeValue, value, name)
	}
}
