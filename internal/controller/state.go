package controller

import (
	"github.com/markusressel/fanctrl/internal/control_loop"
	"time"
)

type Phase int

const (
	PhaseStartup Phase = iota
	PhaseRunning
	PhaseShuttingDown
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting down"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is the state of the controller after the last tick
type State struct {
	Phase Phase `json:"phase"`

	Temperature float64                `json:"temperature"`
	Intensity   control_loop.Intensity `json:"intensity"`
	DutyCycle   float64                `json:"dutyCycle"`

	ActiveProfile string    `json:"activeProfile"`
	NextProfile   string    `json:"nextProfile"`
	SwitchAt      time.Time `json:"switchAt"`
}
