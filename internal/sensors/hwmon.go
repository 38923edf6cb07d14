package sensors

import (
	"fmt"

	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/util"
)

// HwmonSensor reads the temp*_input resolved from its platform and index
type HwmonSensor struct {
	movingAvg
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor *HwmonSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor *HwmonSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor *HwmonSensor) GetValue() (float64, error) {
	integer, err := util.ReadIntFromFile(sensor.Config.HwMon.TempInput)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to read int from file %s: %w", sensor.GetId(), sensor.Config.HwMon.TempInput, err)
	}
	return float64(integer), nil
}
