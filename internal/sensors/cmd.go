package sensors

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/util"
)

const cmdSensorTimeout = 2 * time.Second

type CmdSensor struct {
	movingAvg
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor *CmdSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor *CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor *CmdSensor) GetValue() (float64, error) {
	exec := sensor.Config.Cmd.Exec
	args := sensor.Config.Cmd.Args
	result, err := util.SafeCmdExecution(context.Background(), exec, args, cmdSensorTimeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}

	temp, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to parse command output of %s: %w", sensor.GetId(), exec, err)
	}

	return temp, nil
}
