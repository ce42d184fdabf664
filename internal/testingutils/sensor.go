package testingutils

import (
	"github.com/markusressel/fanctrl/internal/configuration"
)

// FakeSensor returns the configured temperatures one after another,
// repeating the last one once they are used up
type FakeSensor struct {
	ID     string
	Values []float64
	Err    error

	Reads int
}

func NewFakeSensor(values ...float64) *FakeSensor {
	return &FakeSensor{
		ID:     "sensor",
		Values: values,
	}
}

func (s *FakeSensor) GetId() string {
	return s.ID
}

func (s *FakeSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: s.ID}
}

func (s *FakeSensor) GetValue() (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if len(s.Values) == 0 {
		return 0, nil
	}
	index := s.Reads
	if index >= len(s.Values) {
		index = len(s.Values) - 1
	}
	s.Reads++
	return s.Values[index], nil
}
