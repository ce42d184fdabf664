package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestNewSensor_File(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{
		ID:   "soc",
		File: &configuration.FileSensorConfig{Path: "/sys/class/thermal/thermal_zone0/temp"},
	}

	// WHEN
	sensor, err := NewSensor(config)

	// THEN
	require.NoError(t, err)
	assert.IsType(t, &FileSensor{}, sensor)
	assert.Equal(t, "soc", sensor.GetId())
}

func TestNewSensor_Cmd(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{
		ID:  "soc",
		Cmd: &configuration.CmdSensorConfig{Exec: "/usr/bin/vcgencmd", Args: []string{"measure_temp"}},
	}

	// WHEN
	sensor, err := NewSensor(config)

	// THEN
	require.NoError(t, err)
	assert.IsType(t, &CmdSensor{}, sensor)
}

func TestNewSensor_Missing(t *testing.T) {
	_, err := NewSensor(configuration.SensorConfig{ID: "soc"})
	assert.EqualError(t, err, "no matching sensor type for sensor: soc")
}

func TestFileSensor_MilliDegrees(t *testing.T) {
	// GIVEN
	path := writeTempFile(t, "52345\n")
	sensor := FileSensor{Config: configuration.SensorConfig{ID: "soc", File: &configuration.FileSensorConfig{Path: path}}}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	require.NoError(t, err)
	assert.InDelta(t, 52.345, value, 1e-9)
}

func TestFileSensor_MilliDegreesNearZero(t *testing.T) {
	tests := []struct {
		content  string
		expected float64
	}{
		{"800", 0.8},
		{"1000", 1},
		{"0", 0},
		{"-5000", -5},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			// GIVEN
			path := writeTempFile(t, tt.content)
			sensor := FileSensor{Config: configuration.SensorConfig{ID: "soc", File: &configuration.FileSensorConfig{Path: path}}}

			// WHEN
			value, err := sensor.GetValue()

			// THEN
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value, 1e-9)
		})
	}
}

func TestFileSensor_Degrees(t *testing.T) {
	// GIVEN
	path := writeTempFile(t, "52")
	sensor := FileSensor{Config: configuration.SensorConfig{ID: "soc", File: &configuration.FileSensorConfig{
		Path: path,
		MilliDegrees: configuration.DefaultTrueBool{
			Optional: configuration.Optional[bool]{Value: false, Present: true},
		},
	}}}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 52.0, value)
}

func TestFileSensor_Missing(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "missing")
	sensor := FileSensor{Config: configuration.SensorConfig{ID: "soc", File: &configuration.FileSensorConfig{Path: path}}}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.ErrorIs(t, err, ErrSensorRead)
}

func TestFileSensor_Empty(t *testing.T) {
	// GIVEN
	path := writeTempFile(t, "\n")
	sensor := FileSensor{Config: configuration.SensorConfig{ID: "soc", File: &configuration.FileSensorConfig{Path: path}}}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.ErrorIs(t, err, ErrSensorRead)
}

func TestParseCmdOutput(t *testing.T) {
	tests := []struct {
		output   string
		expected float64
	}{
		{"52.3", 52.3},
		{"-4\n", -4},
		{"1200", 1200},
		{"temp=48.2'C", 48.2},
		{"  61 ", 61},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			value, err := parseCmdOutput(tt.output)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value, 1e-9)
		})
	}
}

func TestParseCmdOutput_Invalid(t *testing.T) {
	_, err := parseCmdOutput("unavailable")
	assert.ErrorIs(t, err, ErrSensorRead)
}

func TestCmdSensor_UnsafeExecutable(t *testing.T) {
	// GIVEN
	path := writeTempFile(t, "#!/bin/sh\necho 42\n")
	sensor := CmdSensor{Config: configuration.SensorConfig{ID: "soc", Cmd: &configuration.CmdSensorConfig{Exec: path}}}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	// either rejected by the permission check or not executable at all
	assert.ErrorIs(t, err, ErrSensorRead)
}
