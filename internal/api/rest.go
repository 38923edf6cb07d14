package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	urlParamId          = "id"
	urlParamTemperature = "temperature"
	indentationChar     = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// CreateRestService creates the REST api for the given fuzzy system.
// If registry is not nil, request metrics are recorded in it and all of its
// metrics are served at /metrics/.
func CreateRestService(system fuzzy.System, registry *prometheus.Registry) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())

	if registry != nil {
		echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "fuzzyfan",
			Subsystem:  "api",
			Registerer: registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics/"
			},
		}))
		echoRest.GET("/metrics/", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: registry,
		}))
	}

	echoRest.GET("/alive/", isAlive)

	registerEvaluateEndpoints(echoRest, system)
	registerSystemEndpoints(echoRest, system)
	registerControllerEndpoints(echoRest)
	registerSensorEndpoints(echoRest)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, message string) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad request",
		Message: message,
	}, indentationChar)
}
