package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/sensors"
	"github.com/qdm12/reprint"
)

type SensorStatus struct {
	ID     string                     `json:"id"`
	Config configuration.SensorConfig `json:"config"`
	// moving average in milli-degrees celsius, only set if HasValue is true
	MovingAvg float64 `json:"movingAvg"`
	HasValue  bool    `json:"hasValue"`
}

// the sub configs of a sensor config are pointers shared with the running sensor,
// so the config is deep copied before it leaves the api
func newSensorStatus(sensor sensors.Sensor) SensorStatus {
	return SensorStatus{
		ID:        sensor.GetId(),
		Config:    reprint.This(sensor.GetConfig()).(configuration.SensorConfig),
		MovingAvg: sensor.GetMovingAvg(),
		HasValue:  sensor.HasValue(),
	}
}

func registerSensorEndpoints(rest *echo.Echo) {
	group := rest.Group("/sensor")
	group.GET("/", getSensors)
	group.GET("/:"+urlParamId+"/", getSensor)
}

func getSensors(c echo.Context) error {
	data := map[string]SensorStatus{}
	for id, sensor := range sensors.SensorMap.Items() {
		data[id] = newSensorStatus(sensor)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getSensor(c echo.Context) error {
	id := c.Param(urlParamId)
	sensor, exists := sensors.SensorMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, newSensorStatus(sensor), indentationChar)
}
