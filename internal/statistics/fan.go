package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const fanSubsystem = "fan"

type FanCollector struct {
	id     string
	source StateSource

	dutyCycle *prometheus.Desc
	intensity *prometheus.Desc
	on        *prometheus.Desc
}

func NewFanCollector(id string, source StateSource) *FanCollector {
	return &FanCollector{
		id:     id,
		source: source,
		dutyCycle: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "duty_cycle"),
			"Current PWM duty cycle of the fan (0..1)",
			[]string{"id"}, nil,
		),
		intensity: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "intensity_percent"),
			"Current intensity of the fan in percent, 0 when off",
			[]string{"id"}, nil,
		),
		on: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "on"),
			"Whether the fan is spinning (1) or off (0)",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.dutyCycle
	ch <- collector.intensity
	ch <- collector.on
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	state := collector.source.Snapshot()
	on := 0.0
	if !state.Intensity.IsOff() {
		on = 1
	}
	ch <- prometheus.MustNewConstMetric(collector.dutyCycle, prometheus.GaugeValue, state.DutyCycle, collector.id)
	ch <- prometheus.MustNewConstMetric(collector.intensity, prometheus.GaugeValue, state.Intensity.Value(), collector.id)
	ch <- prometheus.MustNewConstMetric(collector.on, prometheus.GaugeValue, on, collector.id)
}
