package configuration

type SensorConfig struct {
	ID    string             `json:"id"`
	File  *FileSensorConfig  `json:"file,omitempty"`
	Cmd   *CmdSensorConfig   `json:"cmd,omitempty"`
	HwMon *HwMonSensorConfig `json:"hwmon,omitempty"`
}

// HwMonSensorConfig selects a temp*_input of a hwmon chip. Platform is matched
// (case-insensitive regex) against the chip platform shown by "fuzzyfan detect".
type HwMonSensorConfig struct {
	Platform string `json:"platform"`
	Index    int    `json:"index"`

	// TempInput is the resolved temp*_input file, it is not part of the config file
	TempInput string `json:"tempInput"`
}

// FileSensorConfig reads an integer value in milli-degrees celsius from a file,
// f.ex. a hwmon temp*_input file.
type FileSensorConfig struct {
	Path string `json:"path"`
}

// CmdSensorConfig executes a command that prints a value in milli-degrees celsius.
type CmdSensorConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
