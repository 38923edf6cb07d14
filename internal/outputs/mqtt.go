package outputs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/ui"
)

const (
	reconnectInterval = 2 * time.Second
	publishTimeout    = 5 * time.Second
	connectTimeout    = 10 * time.Second
)

// Publisher is the part of an MQTT client used by MqttOutput
type Publisher interface {
	SafePublish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect()
}

type mqttClient struct {
	mutex sync.Mutex
	mqtt  mqtt.Client
}

var (
	connectHandler = func(client mqtt.Client) {
		or := client.OptionsReader()
		ui.Info("Connected to MQTT broker: %v as %s", or.Servers(), or.ClientID())
	}

	connectLostHandler = func(client mqtt.Client, err error) {
		ui.Warning("Connection to MQTT broker lost, reconnecting: %v", err)
	}
)

// NewMqttClient connects to the broker configured in the "mqtt" section.
// Reconnects are handled by the client itself.
func NewMqttClient(config configuration.MqttConfig) (Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(config.Broker).
		SetClientID(config.ClientId).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(reconnectInterval).
		SetMaxReconnectInterval(reconnectInterval)

	if len(config.Username) > 0 {
		opts.SetUsername(config.Username)
		opts.SetPassword(config.Password)
	}

	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		ui.Warning("Connection to MQTT broker %s not established yet, retrying in background", config.Broker)
	} else if token.Error() != nil {
		return nil, fmt.Errorf("unable to connect to MQTT broker %s: %w", config.Broker, token.Error())
	}

	return &mqttClient{
		mqtt: client,
	}, nil
}

func (m *mqttClient) SafePublish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.mqtt.Publish(topic, qos, retained, payload)
}

func (m *mqttClient) Disconnect() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.mqtt.Disconnect(250)
}

// MqttOutput publishes the fan speed in percent with two decimals.
type MqttOutput struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Qos      byte   `json:"qos"`
	Retained bool   `json:"retained"`

	publisher Publisher
}

func (o *MqttOutput) GetId() string {
	return o.ID
}

func (o *MqttOutput) Write(speed float64) error {
	payload := fmt.Sprintf("%.2f", speed)
	token := o.publisher.SafePublish(o.Topic, o.Qos, o.Retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("output %s: %w", o.ID, errors.New("timeout while publishing"))
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("output %s: %w", o.ID, err)
	}
	return nil
}
