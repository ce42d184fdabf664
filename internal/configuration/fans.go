package configuration

type FanConfig struct {
	ID           string          `json:"id"`
	PwmFrequency int             `json:"pwmFrequency"`
	Sysfs        *SysfsFanConfig `json:"sysfs,omitempty"`
	Gpio         *GpioFanConfig  `json:"gpio,omitempty"`
	File         *FileFanConfig  `json:"file,omitempty"`
}

type SysfsFanConfig struct {
	// Chip is the path of the pwm chip, e.g. /sys/class/pwm/pwmchip0
	Chip    string `json:"chip"`
	Channel int    `json:"channel"`
}

// GpioFanConfig drives a 2-wire fan through a transistor, which can only be switched on and off
type GpioFanConfig struct {
	// Chip is the name or path of the gpio chip, e.g. gpiochip0
	Chip string `json:"chip"`
	// Line is the name of the gpio line, e.g. GPIO18
	Line string `json:"line"`
}

type FileFanConfig struct {
	Path string `json:"path"`
}
