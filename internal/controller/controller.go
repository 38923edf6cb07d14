package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/fuzzyfan/internal/control_loop"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/outputs"
	"github.com/markusressel/fuzzyfan/internal/sensors"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/markusressel/fuzzyfan/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	ControllerMap = cmap.New[FuzzyController]()
)

// number of outputs used to compute ControllerStatistics.OutputAvg
const outputWindowSize = 10

type FuzzyController interface {
	GetId() string

	Run(ctx context.Context) error

	// UpdateFanSpeed runs a single evaluation and writes its result to all outputs
	UpdateFanSpeed() error

	GetStatistics() ControllerStatistics

	// GetLastEvaluation returns the most recent evaluation, false if there was none yet
	GetLastEvaluation() (fuzzy.Evaluation, bool)
}

type ControllerStatistics struct {
	EvaluationCount     int     `json:"evaluationCount"`
	ZeroActivationCount int     `json:"zeroActivationCount"`
	OutputErrorCount    int     `json:"outputErrorCount"`
	LastOutput          float64 `json:"lastOutput"`
	OutputAvg           float64 `json:"outputAvg"`
}

type DefaultFuzzyController struct {
	id         string
	system     fuzzy.System
	sensor     sensors.Sensor
	outputs    []outputs.Output
	loop       control_loop.ControlLoop
	updateRate time.Duration
	// time to wait for the sensor monitor to gather data before the first evaluation
	warmup time.Duration

	mu             sync.Mutex
	statistics     ControllerStatistics
	lastEvaluation *fuzzy.Evaluation
	outputWindow   *rolling.PointPolicy
}

func NewFuzzyController(
	id string,
	system fuzzy.System,
	sensor sensors.Sensor,
	outputs []outputs.Output,
	loop control_loop.ControlLoop,
	updateRate time.Duration,
	warmup time.Duration,
) *DefaultFuzzyController {
	if loop == nil {
		loop = control_loop.NewDirectControlLoop(nil)
	}
	return &DefaultFuzzyController{
		id:           id,
		system:       system,
		sensor:       sensor,
		outputs:      outputs,
		loop:         loop,
		updateRate:   updateRate,
		warmup:       warmup,
		outputWindow: util.CreateRollingWindow(outputWindowSize),
	}
}

func (f *DefaultFuzzyController) GetId() string {
	return f.id
}

func (f *DefaultFuzzyController) Run(ctx context.Context) error {
	ui.Info("Gathering sensor data for controller '%s'...", f.id)
	select {
	case <-ctx.Done():
		return nil
	case <-time.After(f.warmup):
	}

	ui.Info("Starting controller loop for '%s'", f.id)
	tick := time.NewTicker(f.updateRate)
	defer tick.Stop()
	for {
		if err := f.UpdateFanSpeed(); err != nil {
			ui.Warning("Error in controller %s: %v", f.id, err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}
	}
}

func (f *DefaultFuzzyController) UpdateFanSpeed() error {
	if !f.sensor.HasValue() {
		return fmt.Errorf("sensor %s has not provided a value yet, outputs are left unchanged", f.sensor.GetId())
	}

	temperature := f.sensor.GetMovingAvg() / 1000
	evaluation := f.system.Evaluate(temperature)

	if evaluation.Activations.IsZero() {
		ui.Debug("Temperature %.2f°C of sensor %s activates no rule of controller %s", temperature, f.sensor.GetId(), f.id)
	}

	f.mu.Lock()
	speed := f.loop.Cycle(evaluation.FanSpeed)
	f.mu.Unlock()
	ui.Debug("Controller %s: %.2f°C -> %.2f%% (applied: %.2f%%)", f.id, temperature, evaluation.FanSpeed, speed)

	var errs []error
	for _, output := range f.outputs {
		if err := output.Write(speed); err != nil {
			errs = append(errs, err)
		}
	}

	f.mu.Lock()
	f.statistics.EvaluationCount++
	if evaluation.Activations.IsZero() {
		f.statistics.ZeroActivationCount++
	}
	f.statistics.OutputErrorCount += len(errs)
	f.statistics.LastOutput = speed
	f.outputWindow.Append(speed)
	f.statistics.OutputAvg = util.GetWindowAvg(f.outputWindow, f.statistics.EvaluationCount)
	f.lastEvaluation = &evaluation
	f.mu.Unlock()

	if len(errs) > 0 {
		return fmt.Errorf("unable to write fan speed to %d of %d outputs: %w", len(errs), len(f.outputs), errs[0])
	}
	return nil
}

func (f *DefaultFuzzyController) GetStatistics() ControllerStatistics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statistics
}

func (f *DefaultFuzzyController) GetLastEvaluation() (fuzzy.Evaluation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastEvaluation == nil {
		return fuzzy.Evaluation{}, false
	}
	return *f.lastEvaluation, true
}
