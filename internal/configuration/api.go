package configuration

type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

type MqttConfig struct {
	Broker   string `json:"broker"`
	ClientId string `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"password"`
}
