package control_loop

import (
	"fmt"
	"strconv"
)

// Intensity is the fan intensity as committed to the fan. It is either Off,
// or a percentage (0..100). Note that Percent(0) is not the same as Off:
// a fan at 0% still spins at the lowest speed of the fan scaling profile.
//
// The zero value is Off.
type Intensity struct {
	on      bool
	percent float64
}

// Off returns the intensity of a stopped fan
func Off() Intensity {
	return Intensity{}
}

// Percent returns an intensity of a spinning fan
func Percent(value float64) Intensity {
	return Intensity{on: true, percent: value}
}

func (i Intensity) IsOff() bool {
	return !i.on
}

// Value returns the percentage of this intensity, treating Off as 0
func (i Intensity) Value() float64 {
	if i.IsOff() {
		return 0
	}
	return i.percent
}

func (i Intensity) String() string {
	if i.IsOff() {
		return "  OFF"
	}
	return fmt.Sprintf("%05.2f", i.percent)
}

func (i Intensity) MarshalText() ([]byte, error) {
	if i.IsOff() {
		return []byte("OFF"), nil
	}
	return []byte(fmt.Sprintf("%g", i.percent)), nil
}

func (i *Intensity) UnmarshalText(text []byte) error {
	if string(text) == "OFF" {
		*i = Off()
		return nil
	}
	value, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return fmt.Errorf("invalid intensity '%s'", text)
	}
	*i = Percent(value)
	return nil
}
