package sensors

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockSensor struct {
	movingAvg
	ID     string
	Values []float64
	Err    error
	index  int
}

func (sensor *MockSensor) GetId() string {
	return sensor.ID
}

func (sensor *MockSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: sensor.ID}
}

func (sensor *MockSensor) GetValue() (float64, error) {
	if sensor.Err != nil {
		return 0, sensor.Err
	}
	value := sensor.Values[sensor.index%len(sensor.Values)]
	sensor.index++
	return value, nil
}

func createFileSensor(t *testing.T, content string) *FileSensor {
	path := filepath.Join(t.TempDir(), "temp1_input")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sensor, err := NewSensor(configuration.SensorConfig{
		ID:   "cpu",
		File: &configuration.FileSensorConfig{Path: path},
	})
	require.NoError(t, err)
	return sensor.(*FileSensor)
}

func TestNewSensorWithoutSubConfig(t *testing.T) {
	// WHEN
	_, err := NewSensor(configuration.SensorConfig{ID: "sensor"})

	// THEN
	assert.EqualError(t, err, "no matching sensor type for sensor: sensor")
}

func TestFileSensorGetValue(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "28000\n")

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 28000.0, value)
	assert.Equal(t, "cpu", sensor.GetId())
}

func TestFileSensorGetValueInvalidContent(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "hot")

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.ErrorContains(t, err, "sensor cpu: unable to read int from file")
}

func TestHwmonSensorGetValue(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp1_input")
	require.NoError(t, os.WriteFile(path, []byte("45000\n"), 0o644))
	sensor, err := NewSensor(configuration.SensorConfig{
		ID:    "cpu",
		HwMon: &configuration.HwMonSensorConfig{Platform: "k10temp", Index: 1, TempInput: path},
	})
	require.NoError(t, err)

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 45000.0, value)
}

func TestHwmonSensorUnresolved(t *testing.T) {
	// WHEN
	_, err := NewSensor(configuration.SensorConfig{
		ID:    "cpu",
		HwMon: &configuration.HwMonSensorConfig{Platform: "k10temp", Index: 1},
	})

	// THEN
	assert.EqualError(t, err, "sensor cpu: hwmon temp input has not been resolved")
}

func TestCmdSensorGetValue(t *testing.T) {
	// GIVEN
	if _, err := util.CheckFilePermissionsForExecution("/bin/echo"); err != nil {
		t.Skipf("/bin/echo is not usable: %v", err)
	}
	sensor, err := NewSensor(configuration.SensorConfig{
		ID: "cmd",
		Cmd: &configuration.CmdSensorConfig{
			Exec: "/bin/echo",
			Args: []string{"45000"},
		},
	})
	require.NoError(t, err)

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 45000.0, value)
}

func TestMovingAvg(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "mock"}
	assert.False(t, sensor.HasValue())

	// WHEN
	sensor.SetMovingAvg(42000)

	// THEN
	assert.Equal(t, 42000.0, sensor.GetMovingAvg())
	assert.True(t, sensor.HasValue())
}

func TestUpdateSensor(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "mock", Values: []float64{20000, 30000, 40000, 50000}}
	window := util.CreateRollingWindow(3)

	// WHEN / THEN
	require.NoError(t, updateSensor(sensor, window, 0))
	assert.Equal(t, 20000.0, sensor.GetMovingAvg())

	require.NoError(t, updateSensor(sensor, window, 1))
	assert.Equal(t, 25000.0, sensor.GetMovingAvg())

	require.NoError(t, updateSensor(sensor, window, 2))
	assert.Equal(t, 30000.0, sensor.GetMovingAvg())

	require.NoError(t, updateSensor(sensor, window, 3))
	assert.Equal(t, 40000.0, sensor.GetMovingAvg())
}

func TestUpdateSensorError(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "mock", Err: errors.New("boom")}
	sensor.SetMovingAvg(28000)
	window := util.CreateRollingWindow(3)

	// WHEN
	err := updateSensor(sensor, window, 0)

	// THEN
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 28000.0, sensor.GetMovingAvg())
}

func TestUpdateSensorFirstReadFails(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "mock", Err: errors.New("boom")}
	window := util.CreateRollingWindow(3)

	// WHEN
	err := updateSensor(sensor, window, 0)

	// THEN
	assert.Error(t, err)
	assert.False(t, sensor.HasValue())
}

func TestSensorMonitorRun(t *testing.T) {
	// GIVEN
	sensor := &MockSensor{ID: "mock", Values: []float64{28000}}
	monitor := NewSensorMonitor(sensor, 10*time.Millisecond, 5)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// WHEN
	err := monitor.Run(ctx)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 28000.0, sensor.GetMovingAvg())
}
