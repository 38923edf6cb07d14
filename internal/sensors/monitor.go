package sensors

import (
	"context"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/markusressel/fuzzyfan/internal/util"
)

type SensorMonitor interface {
	Run(ctx context.Context) error
}

type sensorMonitor struct {
	sensor      Sensor
	pollingRate time.Duration
	window      *rolling.PointPolicy
	samples     int
}

func NewSensorMonitor(sensor Sensor, pollingRate time.Duration, windowSize int) SensorMonitor {
	return &sensorMonitor{
		sensor:      sensor,
		pollingRate: pollingRate,
		window:      util.CreateRollingWindow(windowSize),
	}
}

func (s *sensorMonitor) Run(ctx context.Context) error {
	s.update()

	tick := time.NewTicker(s.pollingRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			s.update()
		}
	}
}

func (s *sensorMonitor) update() {
	if err := updateSensor(s.sensor, s.window, s.samples); err != nil {
		ui.Warning("Error reading sensor: %v", err)
		return
	}
	s.samples++
}

// read the current value of a sensor and update its moving average
func updateSensor(sensor Sensor, window *rolling.PointPolicy, samples int) error {
	value, err := sensor.GetValue()
	if err != nil {
		return err
	}

	window.Append(value)
	sensor.SetMovingAvg(util.GetWindowAvg(window, samples+1))
	return nil
}
