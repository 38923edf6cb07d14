package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/markusressel/fuzzyfan/internal/api"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/control_loop"
	"github.com/markusressel/fuzzyfan/internal/controller"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/hwmon"
	"github.com/markusressel/fuzzyfan/internal/outputs"
	"github.com/markusressel/fuzzyfan/internal/sensors"
	"github.com/markusressel/fuzzyfan/internal/statistics"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

var hwmonBasePath = hwmon.DefaultBasePath

// Objects holds everything the daemon runs
type Objects struct {
	Sensors     []sensors.Sensor
	Controllers []controller.FuzzyController
	Publisher   outputs.Publisher
	Registry    *prometheus.Registry
}

// MqttConnector opens the connection used by mqtt outputs
type MqttConnector func(config configuration.MqttConfig) (outputs.Publisher, error)

// RunDaemon runs sensor monitors, controllers and servers until SIGINT or SIGTERM is received.
func RunDaemon(system fuzzy.System) error {
	config := &configuration.CurrentConfig

	objects, err := InitializeObjects(config, system, outputs.NewMqttClient)
	if err != nil {
		return err
	}
	if objects.Publisher != nil {
		defer objects.Publisher.Disconnect()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			addr := net.JoinHostPort("", strconv.Itoa(config.Statistics.Port))
			handler := http.NewServeMux()
			handler.Handle("/metrics", promhttp.HandlerFor(objects.Registry, promhttp.HandlerOpts{}))
			server := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

			g.Add(func() error {
				ui.Info("Serving metrics at %s/metrics", addr)
				if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				}
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST api
			rest := api.CreateRestService(system, objects.Registry)
			addr := net.JoinHostPort(config.Api.Host, strconv.Itoa(config.Api.Port))

			g.Add(func() error {
				ui.Info("Serving REST api at %s", addr)
				if err := rest.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start REST api: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping REST api...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				}
			})
		}
	}
	{
		// === sensor monitoring
		for _, sensor := range objects.Sensors {
			s := sensor
			mon := sensors.NewSensorMonitor(s, config.TempSensorPollingRate, config.TempRollingWindowSize)

			g.Add(func() error {
				err := mon.Run(ctx)
				ui.Info("Sensor Monitor for sensor %s stopped.", s.GetId())
				return err
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		// === fuzzy controllers
		for _, contr := range objects.Controllers {
			c := contr

			g.Add(func() error {
				err := c.Run(ctx)
				ui.Info("Controller %s stopped.", c.GetId())
				return err
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		return err
	}
	ui.Info("Done.")
	return nil
}

// InitializeObjects creates sensors, outputs and controllers for the given configuration,
// registers them in their maps and in a new prometheus registry.
func InitializeObjects(config *configuration.Configuration, system fuzzy.System, connect MqttConnector) (*Objects, error) {
	objects := &Objects{
		Registry: prometheus.NewRegistry(),
	}
	objects.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var chips []*hwmon.Chip
	for _, sensorConfig := range config.Sensors {
		if sensorConfig.HwMon != nil {
			if chips == nil {
				var err error
				if chips, err = hwmon.GetChips(hwmonBasePath); err != nil {
					return nil, fmt.Errorf("unable to detect hwmon devices: %w", err)
				}
			}
			tempInput, err := hwmon.ResolveTempInput(chips, *sensorConfig.HwMon)
			if err != nil {
				return nil, fmt.Errorf("sensor %s: %w", sensorConfig.ID, err)
			}
			resolved := *sensorConfig.HwMon
			resolved.TempInput = tempInput
			sensorConfig.HwMon = &resolved
		}

		sensor, err := sensors.NewSensor(sensorConfig)
		if err != nil {
			return nil, fmt.Errorf("unable to process sensor configuration: %w", err)
		}

		currentValue, err := sensor.GetValue()
		if err != nil {
			ui.Warning("Error reading sensor %s: %v", sensorConfig.ID, err)
		} else {
			sensor.SetMovingAvg(currentValue)
		}

		sensors.SensorMap.Set(sensorConfig.ID, sensor)
		objects.Sensors = append(objects.Sensors, sensor)
	}

	for _, controllerConfig := range config.Controllers {
		if controllerConfig.Mqtt != nil && objects.Publisher == nil {
			publisher, err := connect(config.Mqtt)
			if err != nil {
				return nil, err
			}
			objects.Publisher = publisher
		}

		outs, err := outputs.NewOutputs(controllerConfig, objects.Publisher)
		if err != nil {
			return nil, err
		}

		sensor, ok := sensors.SensorMap.Get(controllerConfig.Sensor)
		if !ok {
			return nil, fmt.Errorf("controller %s: no sensor definition with id '%s' found", controllerConfig.ID, controllerConfig.Sensor)
		}

		var maxChangePerSecond *float64
		if controllerConfig.MaxChangePerSecond > 0 {
			maxChangePerSecond = &controllerConfig.MaxChangePerSecond
		}

		contr := controller.NewFuzzyController(
			controllerConfig.ID,
			system,
			sensor,
			outs,
			control_loop.NewDirectControlLoop(maxChangePerSecond),
			config.ControllerAdjustmentTickRate,
			2*config.TempSensorPollingRate,
		)
		controller.ControllerMap.Set(controllerConfig.ID, contr)
		objects.Controllers = append(objects.Controllers, contr)
	}

	statistics.Register(objects.Registry,
		statistics.NewSensorCollector(objects.Sensors),
		statistics.NewControllerCollector(objects.Controllers),
	)

	return objects, nil
}
