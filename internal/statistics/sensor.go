package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

type SensorCollector struct {
	id     string
	source StateSource
	value  *prometheus.Desc
}

// NewSensorCollector exposes the temperature that was read on the last fan update,
// the sensor itself is only ever read by the controller
func NewSensorCollector(id string, source StateSource) *SensorCollector {
	return &SensorCollector{
		id:     id,
		source: source,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temperature_celsius"),
			"Last temperature read from the sensor",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	state := collector.source.Snapshot()
	ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, state.Temperature, collector.id)
}
