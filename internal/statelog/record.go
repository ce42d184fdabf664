package statelog

import (
	"fmt"
	"github.com/markusressel/fanctrl/internal/control_loop"
	"time"
)

// Record is a snapshot of the controller state, emitted periodically
type Record struct {
	Timestamp time.Time `json:"timestamp"`

	DutyCycle   float64                `json:"dutyCycle"`
	Intensity   control_loop.Intensity `json:"intensity"`
	Temperature float64                `json:"temperature"`

	ActiveProfile string    `json:"activeProfile"`
	NextProfile   string    `json:"nextProfile"`
	SwitchAt      time.Time `json:"switchAt"`

	// temperature statistics since the previous record
	MinTemperature float64 `json:"minTemperature"`
	AvgTemperature float64 `json:"avgTemperature"`
	MaxTemperature float64 `json:"maxTemperature"`
}

func (r Record) String() string {
	return fmt.Sprintf(
		"duty cycle = %.4f, FAN%% = %s, temperature = %04.1f°C, current profile = %s",
		r.DutyCycle, r.Intensity, r.Temperature, r.ActiveProfile,
	)
}
