package configuration

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validateSystem(&config.System)
	if err != nil {
		return err
	}
	err = validateSensors(config)
	if err != nil {
		return err
	}
	err = validateControllers(config)
	if err != nil {
		return err
	}
	err = validateApi(config)
	if err != nil {
		return err
	}
	return validateStatistics(config)
}

// ValidateDaemon validates the configuration and additionally checks
// that there is something to control.
func ValidateDaemon() error {
	if err := Validate(); err != nil {
		return err
	}
	return validateDaemonConfig(&CurrentConfig)
}

func validateDaemonConfig(config *Configuration) error {
	if len(config.Controllers) <= 0 && !config.Api.Enabled {
		return errors.New("nothing to do: neither controllers are configured nor the api is enabled")
	}
	if config.TempRollingWindowSize <= 0 {
		return fmt.Errorf("tempRollingWindowSize must be >= 1, got %d", config.TempRollingWindowSize)
	}
	if config.TempSensorPollingRate <= 0 {
		return fmt.Errorf("tempSensorPollingRate must be positive, got %s", config.TempSensorPollingRate)
	}
	if config.ControllerAdjustmentTickRate <= 0 {
		return fmt.Errorf("controllerAdjustmentTickRate must be positive, got %s", config.ControllerAdjustmentTickRate)
	}
	return nil
}

func validateSystem(config *SystemConfig) error {
	system, err := config.ToSystem()
	if err != nil {
		return err
	}

	for _, term := range fuzzy.TemperatureTerms() {
		triangle := system.TemperatureSet(term)
		if !triangle.IsOrdered() {
			return fmt.Errorf("system.temperature.%s: breakpoints must satisfy left <= peak <= right, got [%v, %v, %v]", term, triangle.Left, triangle.Peak, triangle.Right)
		}
		if triangle.Left == triangle.Peak || triangle.Peak == triangle.Right {
			ui.Warning("system.temperature.%s: degenerate triangle, membership is a step at %v", term, triangle.Peak)
		}

		fou := system.FootprintOfUncertainty(term)
		if !isUnitValue(fou.Lower) || !isUnitValue(fou.Upper) {
			return fmt.Errorf("system.fou.%s: offsets must be in [0..1], got [%v, %v]", term, fou.Lower, fou.Upper)
		}
	}

	for _, term := range fuzzy.FanSpeedTerms() {
		triangle := system.FanSpeedSet(term)
		if !triangle.IsOrdered() {
			return fmt.Errorf("system.fanSpeed.%s: breakpoints must satisfy left <= peak <= right, got [%v, %v, %v]", term, triangle.Left, triangle.Peak, triangle.Right)
		}
	}

	return nil
}

func isUnitValue(value float64) bool {
	return !math.IsNaN(value) && value >= 0 && value <= 1
}

func validateSensors(config *Configuration) error {
	var sensorIds []string
	for _, sensorConfig := range config.Sensors {
		if len(sensorConfig.ID) <= 0 {
			return errors.New("sensor: missing id")
		}
		if slices.Contains(sensorIds, sensorConfig.ID) {
			return fmt.Errorf("duplicate sensor id detected: %s", sensorConfig.ID)
		}
		sensorIds = append(sensorIds, sensorConfig.ID)

		subConfigs := 0
		if sensorConfig.File != nil {
			subConfigs++
		}
		if sensorConfig.Cmd != nil {
			subConfigs++
		}
		if sensorConfig.HwMon != nil {
			subConfigs++
		}
		if subConfigs > 1 {
			return fmt.Errorf("sensor %s: only one sensor type can be used per sensor definition block", sensorConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("sensor %s: sub-configuration for sensor is missing, use one of: file | cmd | hwmon", sensorConfig.ID)
		}

		if sensorConfig.File != nil && len(sensorConfig.File.Path) <= 0 {
			return fmt.Errorf("sensor %s: no file path provided", sensorConfig.ID)
		}
		if sensorConfig.Cmd != nil && len(sensorConfig.Cmd.Exec) <= 0 {
			return fmt.Errorf("sensor %s: executable is missing", sensorConfig.ID)
		}
		if sensorConfig.HwMon != nil {
			if len(sensorConfig.HwMon.Platform) <= 0 {
				return fmt.Errorf("sensor %s: hwmon platform is missing", sensorConfig.ID)
			}
			if _, err := regexp.Compile("(?i)" + sensorConfig.HwMon.Platform); err != nil {
				return fmt.Errorf("sensor %s: invalid hwmon platform regex: %w", sensorConfig.ID, err)
			}
			if sensorConfig.HwMon.Index <= 0 {
				return fmt.Errorf("sensor %s: invalid hwmon index %d, must be >= 1", sensorConfig.ID, sensorConfig.HwMon.Index)
			}
		}

		if !isSensorConfigInUse(sensorConfig, config.Controllers) {
			ui.Warning("Unused sensor configuration: %s", sensorConfig.ID)
		}
	}

	return nil
}

func isSensorConfigInUse(config SensorConfig, controllers []ControllerConfig) bool {
	for _, controllerConfig := range controllers {
		if controllerConfig.Sensor == config.ID {
			return true
		}
	}
	return false
}

func sensorIdExists(sensorId string, config *Configuration) bool {
	for _, sensor := range config.Sensors {
		if sensor.ID == sensorId {
			return true
		}
	}
	return false
}

func validateControllers(config *Configuration) error {
	var controllerIds []string
	for _, controllerConfig := range config.Controllers {
		if len(controllerConfig.ID) <= 0 {
			return errors.New("controller: missing id")
		}
		if slices.Contains(controllerIds, controllerConfig.ID) {
			return fmt.Errorf("duplicate controller id detected: %s", controllerConfig.ID)
		}
		controllerIds = append(controllerIds, controllerConfig.ID)

		if len(controllerConfig.Sensor) <= 0 {
			return fmt.Errorf("controller %s: missing sensor id", controllerConfig.ID)
		}
		if !sensorIdExists(controllerConfig.Sensor, config) {
			return fmt.Errorf("controller %s: no sensor definition with id '%s' found", controllerConfig.ID, controllerConfig.Sensor)
		}

		if controllerConfig.MaxChangePerSecond < 0 {
			return fmt.Errorf("controller %s: maxChangePerSecond must be >= 0, got %v", controllerConfig.ID, controllerConfig.MaxChangePerSecond)
		}

		if controllerConfig.File == nil && controllerConfig.Mqtt == nil {
			return fmt.Errorf("controller %s: no output configured, use at least one of: file | mqtt", controllerConfig.ID)
		}

		if controllerConfig.File != nil {
			if len(controllerConfig.File.Path) <= 0 {
				return fmt.Errorf("controller %s: no file path provided", controllerConfig.ID)
			}
			if controllerConfig.File.MaxValue < 0 {
				return fmt.Errorf("controller %s: invalid maxValue %d, must be >= 0 (0 means 100)", controllerConfig.ID, controllerConfig.File.MaxValue)
			}
		}

		if controllerConfig.Mqtt != nil {
			if len(config.Mqtt.Broker) <= 0 {
				return fmt.Errorf("controller %s: mqtt output requires a broker in the mqtt section", controllerConfig.ID)
			}
			if len(controllerConfig.Mqtt.Topic) <= 0 {
				return fmt.Errorf("controller %s: missing mqtt topic", controllerConfig.ID)
			}
			if controllerConfig.Mqtt.Qos > 2 {
				return fmt.Errorf("controller %s: invalid mqtt qos %d, use one of: 0 | 1 | 2", controllerConfig.ID, controllerConfig.Mqtt.Qos)
			}
		}
	}

	return nil
}

func validateApi(config *Configuration) error {
	if !config.Api.Enabled {
		return nil
	}
	if !isValidPort(config.Api.Port) {
		return fmt.Errorf("api: invalid port %d", config.Api.Port)
	}
	return nil
}

func validateStatistics(config *Configuration) error {
	if !config.Statistics.Enabled {
		return nil
	}
	if !isValidPort(config.Statistics.Port) {
		return fmt.Errorf("statistics: invalid port %d", config.Statistics.Port)
	}
	if config.Api.Enabled && config.Api.Port == config.Statistics.Port {
		return fmt.Errorf("statistics: port %d is already used by the api", config.Statistics.Port)
	}
	return nil
}

func isValidPort(port int) bool {
	return port > 0 && port < 65536
}
