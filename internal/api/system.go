package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
)

func registerSystemEndpoints(rest *echo.Echo, system fuzzy.System) {
	rest.GET("/system/", func(c echo.Context) error {
		data := configuration.SystemConfigFrom(system)
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
}
