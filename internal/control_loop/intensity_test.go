package control_loop

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIntensity_ZeroValueIsOff(t *testing.T) {
	var intensity Intensity
	assert.True(t, intensity.IsOff())
	assert.Equal(t, Off(), intensity)
}

func TestIntensity_OffIsNotZeroPercent(t *testing.T) {
	assert.NotEqual(t, Off(), Percent(0))
	assert.False(t, Percent(0).IsOff())
	assert.Equal(t, Off().Value(), Percent(0).Value())
}

func TestIntensity_String(t *testing.T) {
	assert.Equal(t, "  OFF", Off().String())
	assert.Equal(t, "00.10", Percent(0.1).String())
	assert.Equal(t, "100.00", Percent(100).String())
}

func TestIntensity_MarshalText(t *testing.T) {
	text, err := Off().MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "OFF", string(text))

	text, err = Percent(12.5).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "12.5", string(text))
}

func TestIntensity_UnmarshalText(t *testing.T) {
	var intensity Intensity

	err := intensity.UnmarshalText([]byte("OFF"))
	assert.NoError(t, err)
	assert.Equal(t, Off(), intensity)

	err = intensity.UnmarshalText([]byte("0"))
	assert.NoError(t, err)
	assert.Equal(t, Percent(0), intensity)

	err = intensity.UnmarshalText([]byte("loud"))
	assert.Error(t, err)
}
