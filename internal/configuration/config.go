package configuration

import (
	"errors"
	"time"

	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	System SystemConfig `json:"system"`

	TempSensorPollingRate time.Duration `json:"tempSensorPollingRate"`
	TempRollingWindowSize int           `json:"tempRollingWindowSize"`

	ControllerAdjustmentTickRate time.Duration `json:"controllerAdjustmentTickRate"`

	Sensors     []SensorConfig     `json:"sensors"`
	Controllers []ControllerConfig `json:"controllers"`

	Mqtt       MqttConfig       `json:"mqtt"`
	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig configures where the config file is searched and reads in ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fuzzyfan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Warning("Couldn't detect home directory: %v", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("/etc/fuzzyfan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("system.widenOutsideSupport", false)

	viper.SetDefault("TempSensorPollingRate", 200*time.Millisecond)
	viper.SetDefault("TempRollingWindowSize", 10)
	viper.SetDefault("ControllerAdjustmentTickRate", 1*time.Second)

	viper.SetDefault("sensors", []SensorConfig{})
	viper.SetDefault("controllers", []ControllerConfig{})

	viper.SetDefault("mqtt.clientId", "fuzzyfan")

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)
}

// DetectConfigFile reads in the config file and returns its path.
// If no config file could be found in any of the search paths, an empty path
// is returned without an error and the default values apply.
func DetectConfigFile() (string, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", err
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// ReadConfigFile is like DetectConfigFile, but a config file is required.
func ReadConfigFile() (string, error) {
	path, err := DetectConfigFile()
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New("no config file found, create one at ./fuzzyfan.yaml, ~/fuzzyfan.yaml or /etc/fuzzyfan/fuzzyfan.yaml")
	}
	return path, nil
}

// LoadConfig decodes the values known to viper into CurrentConfig.
func LoadConfig() error {
	return viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			TriangleConfigHookFunc(),
			FouConfigHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}
