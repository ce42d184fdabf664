package fans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFan(t *testing.T) {
	tests := []struct {
		name     string
		config   configuration.FanConfig
		expected Fan
	}{
		{"sysfs", configuration.FanConfig{ID: "fan", Sysfs: &configuration.SysfsFanConfig{Chip: "/sys/class/pwm/pwmchip0"}}, &SysfsFan{}},
		{"gpio", configuration.FanConfig{ID: "fan", Gpio: &configuration.GpioFanConfig{Chip: "gpiochip0", Line: "GPIO18"}}, &GpioFan{}},
		{"file", configuration.FanConfig{ID: "fan", File: &configuration.FileFanConfig{Path: "/tmp/fan"}}, &FileFan{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fan, err := NewFan(tt.config)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, fan)
			assert.Equal(t, "fan", fan.GetId())
			assert.Equal(t, tt.config, fan.GetConfig())
		})
	}
}

func TestNewFan_Missing(t *testing.T) {
	_, err := NewFan(configuration.FanConfig{ID: "fan"})
	assert.EqualError(t, err, "no matching fan type for fan: fan")
}

func TestFileFan_SetDutyCycle(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "fan")
	err := os.WriteFile(path, []byte("1000000"), 0644)
	require.NoError(t, err)
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", File: &configuration.FileFanConfig{Path: path}})

	// WHEN
	err = fan.SetDutyCycle(25000, 0.096)

	// THEN
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "96000", string(content))
	assert.Equal(t, 0.096, fan.GetDutyCycle())
}

func TestFileFan_SetDutyCycle_OutOfRange(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "fan")
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", File: &configuration.FileFanConfig{Path: path}})

	// WHEN
	err := fan.SetDutyCycle(25000, 1.5)

	// THEN
	assert.ErrorIs(t, err, ErrHardwareWrite)
	assert.Equal(t, 0.0, fan.GetDutyCycle())
}

func TestFileFan_SetDutyCycle_MissingDirectory(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "missing", "fan")
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", File: &configuration.FileFanConfig{Path: path}})

	// WHEN
	err := fan.SetDutyCycle(25000, 0.5)

	// THEN
	assert.ErrorIs(t, err, ErrHardwareWrite)
}

// fakeSysfs creates a pwm chip directory with an exported channel 0
// and records every attribute write
func fakeSysfs(t *testing.T) (chip string, writes *[]string) {
	chip = t.TempDir()
	err := os.MkdirAll(filepath.Join(chip, "pwm0"), 0755)
	require.NoError(t, err)

	recorded := []string{}
	old := writeAttribute
	writeAttribute = func(value string, path string) error {
		rel, _ := filepath.Rel(chip, path)
		recorded = append(recorded, rel+"="+value)
		return os.WriteFile(path, []byte(value), 0644)
	}
	t.Cleanup(func() { writeAttribute = old })

	return chip, &recorded
}

func TestSysfsFan_SetDutyCycle(t *testing.T) {
	// GIVEN
	chip, writes := fakeSysfs(t)
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", Sysfs: &configuration.SysfsFanConfig{Chip: chip, Channel: 0}})

	// WHEN
	err := fan.SetDutyCycle(25000, 0.096)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pwm0/enable=0",
		"pwm0/duty_cycle=0",
		"pwm0/period=40000",
		"pwm0/enable=1",
		"pwm0/duty_cycle=3840",
	}, *writes)
	assert.Equal(t, 0.096, fan.GetDutyCycle())
}

func TestSysfsFan_SetDutyCycle_KeepsPeriod(t *testing.T) {
	// GIVEN
	chip, writes := fakeSysfs(t)
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", Sysfs: &configuration.SysfsFanConfig{Chip: chip, Channel: 0}})
	require.NoError(t, fan.SetDutyCycle(25000, 1))
	*writes = (*writes)[:0]

	// WHEN
	err := fan.SetDutyCycle(25000, 0.5)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []string{"pwm0/duty_cycle=20000"}, *writes)
}

func TestSysfsFan_ExportsChannel(t *testing.T) {
	// GIVEN
	chip := t.TempDir()
	old := writeAttribute
	writeAttribute = func(value string, path string) error {
		if filepath.Base(path) == "export" {
			return os.MkdirAll(filepath.Join(chip, "pwm"+value), 0755)
		}
		return os.WriteFile(path, []byte(value), 0644)
	}
	t.Cleanup(func() { writeAttribute = old })
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", Sysfs: &configuration.SysfsFanConfig{Chip: chip, Channel: 1}})

	// WHEN
	err := fan.SetDutyCycle(25000, 1)

	// THEN
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(chip, "pwm1", "duty_cycle"))
	require.NoError(t, err)
	assert.Equal(t, "40000", string(content))
}

func TestSysfsFan_MissingChip(t *testing.T) {
	// GIVEN
	chip := filepath.Join(t.TempDir(), "pwmchip9")
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", Sysfs: &configuration.SysfsFanConfig{Chip: chip, Channel: 0}})

	// WHEN
	err := fan.SetDutyCycle(25000, 1)

	// THEN
	assert.ErrorIs(t, err, ErrHardwareWrite)
}

func TestSysfsFan_Close(t *testing.T) {
	// GIVEN
	chip, writes := fakeSysfs(t)
	fan, _ := NewFan(configuration.FanConfig{ID: "fan", Sysfs: &configuration.SysfsFanConfig{Chip: chip, Channel: 0}})
	require.NoError(t, fan.SetDutyCycle(25000, 0))
	*writes = (*writes)[:0]

	// WHEN
	err := fan.Close()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []string{"pwm0/enable=0"}, *writes)
}
