package configuration

import (
	"fmt"
	"sort"
	"strings"

	"github.com/markusressel/fuzzyfan/internal/fuzzy"
)

// SystemConfig overrides the built-in term definitions of the fuzzy system.
// Terms are keyed by name, terms that are not listed keep their default.
type SystemConfig struct {
	Temperature map[string]TriangleConfig `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	FanSpeed    map[string]TriangleConfig `json:"fanSpeed,omitempty" yaml:"fanSpeed,omitempty"`
	Fou         map[string]FouConfig      `json:"fou,omitempty" yaml:"fou,omitempty"`

	WidenOutsideSupport bool `json:"widenOutsideSupport" yaml:"widenOutsideSupport"`
}

// TriangleConfig can be written as a map or as a list: [left, peak, right]
type TriangleConfig struct {
	Left  float64 `json:"left" yaml:"left"`
	Peak  float64 `json:"peak" yaml:"peak"`
	Right float64 `json:"right" yaml:"right"`
}

// FouConfig can be written as a map or as a list: [lower, upper]
type FouConfig struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

func (c TriangleConfig) toTriangle() fuzzy.Triangle {
	return fuzzy.Triangle{Left: c.Left, Peak: c.Peak, Right: c.Right}
}

func (c FouConfig) toFou() fuzzy.Fou {
	return fuzzy.Fou{Lower: c.Lower, Upper: c.Upper}
}

// ToSystem builds the fuzzy system described by this configuration
// on top of fuzzy.DefaultSystem.
func (c SystemConfig) ToSystem() (fuzzy.System, error) {
	system := fuzzy.DefaultSystem()
	system.WidenOutsideSupport = c.WidenOutsideSupport

	for _, name := range sortedKeys(c.Temperature) {
		term, err := fuzzy.ParseTemperatureTerm(strings.ToLower(name))
		if err != nil {
			return system, fmt.Errorf("system.temperature: %w", err)
		}
		system.Temperature[term] = c.Temperature[name].toTriangle()
	}

	for _, name := range sortedKeys(c.Fou) {
		term, err := fuzzy.ParseTemperatureTerm(strings.ToLower(name))
		if err != nil {
			return system, fmt.Errorf("system.fou: %w", err)
		}
		system.Fou[term] = c.Fou[name].toFou()
	}

	for _, name := range sortedKeys(c.FanSpeed) {
		term, err := fuzzy.ParseFanSpeedTerm(strings.ToLower(name))
		if err != nil {
			return system, fmt.Errorf("system.fanSpeed: %w", err)
		}
		system.FanSpeed[term] = c.FanSpeed[name].toTriangle()
	}

	return system, nil
}

// SystemConfigFrom is the inverse of ToSystem, listing every term explicitly.
func SystemConfigFrom(system fuzzy.System) SystemConfig {
	result := SystemConfig{
		Temperature:         map[string]TriangleConfig{},
		FanSpeed:            map[string]TriangleConfig{},
		Fou:                 map[string]FouConfig{},
		WidenOutsideSupport: system.WidenOutsideSupport,
	}
	for _, term := range fuzzy.TemperatureTerms() {
		t := system.TemperatureSet(term)
		result.Temperature[term.String()] = TriangleConfig{Left: t.Left, Peak: t.Peak, Right: t.Right}
		f := system.FootprintOfUncertainty(term)
		result.Fou[term.String()] = FouConfig{Lower: f.Lower, Upper: f.Upper}
	}
	for _, term := range fuzzy.FanSpeedTerms() {
		t := system.FanSpeedSet(term)
		result.FanSpeed[term.String()] = TriangleConfig{Left: t.Left, Peak: t.Peak, Right: t.Right}
	}
	return result
}

func sortedKeys[V any](input map[string]V) []string {
	result := make([]string, 0, len(input))
	for k := range input {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
