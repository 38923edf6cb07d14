package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fuzzyfan/internal/controller"
)

type ControllerStatus struct {
	ID             string                          `json:"id"`
	Statistics     controller.ControllerStatistics `json:"statistics"`
	LastEvaluation *EvaluationResult               `json:"lastEvaluation,omitempty"`
}

func newControllerStatus(contr controller.FuzzyController) ControllerStatus {
	result := ControllerStatus{
		ID:         contr.GetId(),
		Statistics: contr.GetStatistics(),
	}
	if evaluation, ok := contr.GetLastEvaluation(); ok {
		lastEvaluation := newEvaluationResult(evaluation)
		result.LastEvaluation = &lastEvaluation
	}
	return result
}

func registerControllerEndpoints(rest *echo.Echo) {
	group := rest.Group("/controller")

	group.GET("/", getControllers)
	group.GET("/:"+urlParamId+"/", getController)
}

func getControllers(c echo.Context) error {
	data := map[string]ControllerStatus{}
	for id, contr := range controller.ControllerMap.Items() {
		data[id] = newControllerStatus(contr)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getController(c echo.Context) error {
	id := c.Param(urlParamId)
	contr, exists := controller.ControllerMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, newControllerStatus(contr), indentationChar)
}
