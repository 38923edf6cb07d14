package sensors

import (
	"fmt"
	"sync"

	"github.com/markusressel/fuzzyfan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current value of this sensor in milli-degrees celsius
	GetValue() (float64, error)

	// GetMovingAvg returns the moving average of this sensor's value
	GetMovingAvg() float64
	SetMovingAvg(avg float64)

	// HasValue is false until the moving average has been set at least once
	HasValue() bool
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	if config.HwMon != nil {
		if len(config.HwMon.TempInput) <= 0 {
			return nil, fmt.Errorf("sensor %s: hwmon temp input has not been resolved", config.ID)
		}
		return &HwmonSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}

// movingAvg is shared by all sensor implementations, it is written by the
// sensor monitor and read by controllers.
type movingAvg struct {
	mu       sync.RWMutex
	value    float64
	hasValue bool
}

func (m *movingAvg) GetMovingAvg() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

func (m *movingAvg) SetMovingAvg(avg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = avg
	m.hasValue = true
}

func (m *movingAvg) HasValue() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasValue
}
