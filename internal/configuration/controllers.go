package configuration

type ControllerConfig struct {
	ID string `json:"id"`
	// Sensor is the id of the sensor used as the input temperature
	Sensor string `json:"sensor"`

	// MaxChangePerSecond limits how fast the fan speed (in percent) may change, 0 means unlimited
	MaxChangePerSecond float64 `json:"maxChangePerSecond,omitempty"`

	File *FileOutputConfig `json:"file,omitempty"`
	Mqtt *MqttOutputConfig `json:"mqtt,omitempty"`
}

// FileOutputConfig writes the recommended fan speed, scaled from [0..100] to [0..MaxValue],
// to a file. Use a MaxValue of 255 to write to a hwmon pwm file directly.
type FileOutputConfig struct {
	Path     string `json:"path"`
	MaxValue int    `json:"maxValue"`
}

// MqttOutputConfig publishes the recommended fan speed to a topic on the broker
// configured in the "mqtt" section.
type MqttOutputConfig struct {
	Topic    string `json:"topic"`
	Qos      byte   `json:"qos"`
	Retained bool   `json:"retained"`
}

const DefaultFileOutputMaxValue = 100
