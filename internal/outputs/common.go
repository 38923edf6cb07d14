package outputs

import (
	"fmt"

	"github.com/markusressel/fuzzyfan/internal/configuration"
)

// Output receives the recommended fan speed in percent [0..100].
type Output interface {
	GetId() string
	Write(speed float64) error
}

// NewOutputs creates all outputs configured for the given controller.
// publisher may be nil if the controller has no mqtt output.
func NewOutputs(config configuration.ControllerConfig, publisher Publisher) ([]Output, error) {
	var result []Output

	if config.File != nil {
		maxValue := config.File.MaxValue
		if maxValue <= 0 {
			maxValue = configuration.DefaultFileOutputMaxValue
		}
		result = append(result, &FileOutput{
			ID:       config.ID + "/file",
			Path:     config.File.Path,
			MaxValue: maxValue,
		})
	}

	if config.Mqtt != nil {
		if publisher == nil {
			return nil, fmt.Errorf("controller %s: mqtt output configured, but no mqtt connection available", config.ID)
		}
		result = append(result, &MqttOutput{
			ID:        config.ID + "/mqtt",
			Topic:     config.Mqtt.Topic,
			Qos:       config.Mqtt.Qos,
			Retained:  config.Mqtt.Retained,
			publisher: publisher,
		})
	}

	if len(result) <= 0 {
		return nil, fmt.Errorf("no matching output type for controller: %s", config.ID)
	}
	return result, nil
}
