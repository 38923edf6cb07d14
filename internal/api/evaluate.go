package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
)

type TermResult struct {
	Membership float64 `json:"membership"`
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
}

type EvaluationResult struct {
	Temperature float64               `json:"temperature"`
	Terms       map[string]TermResult `json:"terms"`
	Activations map[string]float64    `json:"activations"`
	FanSpeed    float64               `json:"fanSpeed"`
}

func newEvaluationResult(evaluation fuzzy.Evaluation) EvaluationResult {
	result := EvaluationResult{
		Temperature: evaluation.Temperature,
		Terms:       map[string]TermResult{},
		Activations: map[string]float64{},
		FanSpeed:    evaluation.FanSpeed,
	}
	for _, term := range fuzzy.TemperatureTerms() {
		result.Terms[term.String()] = TermResult{
			Membership: evaluation.Memberships[term],
			Lower:      evaluation.Intervals[term].Lower,
			Upper:      evaluation.Intervals[term].Upper,
		}
	}
	for _, term := range fuzzy.FanSpeedTerms() {
		result.Activations[term.String()] = evaluation.Activations[term]
	}
	return result
}

func registerEvaluateEndpoints(rest *echo.Echo, system fuzzy.System) {
	group := rest.Group("/evaluate")

	group.GET("/:"+urlParamTemperature+"/", func(c echo.Context) error {
		return evaluate(c, system)
	})
}

// evaluates the fuzzy system for the temperature given in the path
func evaluate(c echo.Context, system fuzzy.System) error {
	param := c.Param(urlParamTemperature)
	temperature, err := strconv.ParseFloat(param, 64)
	if err != nil || math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return returnBadRequest(c, "Invalid temperature '"+param+"'")
	}

	data := newEvaluationResult(system.Evaluate(temperature))
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
