package configuration

type SensorConfig struct {
	ID   string            `json:"id"`
	File *FileSensorConfig `json:"file,omitempty"`
	Cmd  *CmdSensorConfig  `json:"cmd,omitempty"`
}

type FileSensorConfig struct {
	// Path to a file containing the temperature
	Path string `json:"path"`
	// MilliDegrees indicates that the file contains m°C, like the thermal zones in /sys/class/thermal.
	// Defaults to true.
	MilliDegrees DefaultTrueBool `json:"milliDegrees"`
}

type CmdSensorConfig struct {
	// Exec is the path to an executable printing the temperature in °C
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
