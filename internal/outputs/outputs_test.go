package outputs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                       { return true }
func (t *fakeToken) WaitTimeout(_ time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  interface{}
}

type fakePublisher struct {
	messages []published
	err      error
}

func (p *fakePublisher) SafePublish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.messages = append(p.messages, published{topic, qos, retained, payload})
	return &fakeToken{err: p.err}
}

func (p *fakePublisher) Disconnect() {}

func TestFileOutputScalesToMaxValue(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm1")
	output := &FileOutput{ID: "cpu/file", Path: path, MaxValue: 255}

	// WHEN
	err := output.Write(50)

	// THEN
	require.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 128, value)
}

func TestFileOutputClampsOutOfRange(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "speed")
	output := &FileOutput{ID: "cpu/file", Path: path, MaxValue: 100}

	// WHEN
	err := output.Write(150)

	// THEN
	require.NoError(t, err)
	value, _ := util.ReadIntFromFile(path)
	assert.Equal(t, 100, value)
}

func TestFileOutputReplacesRegularFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "speed")
	require.NoError(t, os.WriteFile(path, []byte("0"), 0o644))
	before, err := os.Stat(path)
	require.NoError(t, err)
	output := &FileOutput{ID: "cpu/file", Path: path, MaxValue: 100}

	// WHEN
	err = output.Write(50)

	// THEN
	require.NoError(t, err)
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, os.SameFile(before, after))
}

func TestFileOutputWritesSysfsInPlace(t *testing.T) {
	// GIVEN
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	previousRoot := sysfsRoot
	sysfsRoot = dir + string(filepath.Separator)
	t.Cleanup(func() {
		sysfsRoot = previousRoot
	})

	pwm := filepath.Join(dir, "pwm1")
	require.NoError(t, os.WriteFile(pwm, []byte("0"), 0o644))
	before, err := os.Stat(pwm)
	require.NoError(t, err)
	output := &FileOutput{ID: "cpu/file", Path: pwm, MaxValue: 255}

	// WHEN
	err = output.Write(50)

	// THEN
	require.NoError(t, err)
	after, err := os.Stat(pwm)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after))
	value, err := util.ReadIntFromFile(pwm)
	assert.NoError(t, err)
	assert.Equal(t, 128, value)
}

func TestFileOutputMissingDirectory(t *testing.T) {
	// GIVEN
	output := &FileOutput{ID: "cpu/file", Path: filepath.Join(t.TempDir(), "missing", "speed"), MaxValue: 100}

	// WHEN
	err := output.Write(50)

	// THEN
	assert.ErrorContains(t, err, "output cpu/file: unable to write to")
}

func TestMqttOutputPublishesPercent(t *testing.T) {
	// GIVEN
	publisher := &fakePublisher{}
	output := &MqttOutput{ID: "cpu/mqtt", Topic: "fans/cpu", Qos: 1, Retained: true, publisher: publisher}

	// WHEN
	err := output.Write(125.0 / 3.0)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []published{{"fans/cpu", 1, true, "41.67"}}, publisher.messages)
}

func TestMqttOutputPublishError(t *testing.T) {
	// GIVEN
	publisher := &fakePublisher{err: errors.New("not connected")}
	output := &MqttOutput{ID: "cpu/mqtt", Topic: "fans/cpu", publisher: publisher}

	// WHEN
	err := output.Write(50)

	// THEN
	assert.EqualError(t, err, "output cpu/mqtt: not connected")
}

func TestNewOutputs(t *testing.T) {
	// GIVEN
	config := configuration.ControllerConfig{
		ID:     "cpu",
		Sensor: "cpu_temp",
		File:   &configuration.FileOutputConfig{Path: "/tmp/speed"},
		Mqtt:   &configuration.MqttOutputConfig{Topic: "fans/cpu"},
	}

	// WHEN
	result, err := NewOutputs(config, &fakePublisher{})

	// THEN
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "cpu/file", result[0].GetId())
	assert.Equal(t, configuration.DefaultFileOutputMaxValue, result[0].(*FileOutput).MaxValue)
	assert.Equal(t, "cpu/mqtt", result[1].GetId())
}

func TestNewOutputsMqttWithoutPublisher(t *testing.T) {
	// GIVEN
	config := configuration.ControllerConfig{
		ID:   "cpu",
		Mqtt: &configuration.MqttOutputConfig{Topic: "fans/cpu"},
	}

	// WHEN
	_, err := NewOutputs(config, nil)

	// THEN
	assert.EqualError(t, err, "controller cpu: mqtt output configured, but no mqtt connection available")
}

func TestNewOutputsNone(t *testing.T) {
	// WHEN
	_, err := NewOutputs(configuration.ControllerConfig{ID: "cpu"}, nil)

	// THEN
	assert.EqualError(t, err, "no matching output type for controller: cpu")
}
