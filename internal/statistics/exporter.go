package statistics

import (
	"github.com/markusressel/fanctrl/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "fanctrl"
)

// StateSource provides snapshots of the controller state
type StateSource interface {
	Snapshot() controller.State
}

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}
