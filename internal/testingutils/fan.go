package testingutils

import (
	"github.com/markusressel/fanctrl/internal/configuration"
)

// FakeFan records every duty cycle written to it
type FakeFan struct {
	ID string

	Writes     []float64
	Frequency  int
	DutyCycle  float64
	Err        error
	CloseCount int
}

func NewFakeFan() *FakeFan {
	return &FakeFan{
		ID: "fan",
	}
}

func (f *FakeFan) GetId() string {
	return f.ID
}

func (f *FakeFan) GetConfig() configuration.FanConfig {
	return configuration.FanConfig{ID: f.ID}
}

func (f *FakeFan) SetDutyCycle(frequency int, dutyCycle float64) error {
	if f.Err != nil {
		return f.Err
	}
	f.Frequency = frequency
	f.DutyCycle = dutyCycle
	f.Writes = append(f.Writes, dutyCycle)
	return nil
}

func (f *FakeFan) GetDutyCycle() float64 {
	return f.DutyCycle
}

func (f *FakeFan) Close() error {
	f.CloseCount++
	return nil
}
