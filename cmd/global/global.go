package global

import (
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/ui"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadSystem reads and validates the configuration file and returns the fuzzy
// system it describes. Without a config file the default system is returned,
// unless requireFile is set.
func LoadSystem(requireFile bool) (fuzzy.System, error) {
	var configPath string
	var err error
	if requireFile {
		configPath, err = configuration.ReadConfigFile()
	} else {
		configPath, err = configuration.DetectConfigFile()
	}
	if err != nil {
		return fuzzy.System{}, err
	}

	if configPath == "" {
		ui.Debug("No configuration file found, using defaults")
	} else {
		ui.Debug("Using configuration file at: %s", configPath)
	}

	if err = configuration.LoadConfig(); err != nil {
		return fuzzy.System{}, err
	}
	if err = configuration.Validate(); err != nil {
		return fuzzy.System{}, err
	}
	return configuration.CurrentConfig.System.ToSystem()
}
