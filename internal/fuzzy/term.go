package fuzzy

import "fmt"

// TemperatureTerm is one of the linguistic terms of the temperature input.
type TemperatureTerm int

const (
	Cold TemperatureTerm = iota
	Neutral
	Hot

	TemperatureTermCount = 3
)

// FanSpeedTerm is one of the linguistic terms of the fan speed output.
type FanSpeedTerm int

const (
	Slow FanSpeedTerm = iota
	Medium
	Fast

	FanSpeedTermCount = 3
)

var (
	temperatureTermNames = [TemperatureTermCount]string{"cold", "neutral", "hot"}
	fanSpeedTermNames    = [FanSpeedTermCount]string{"slow", "medium", "fast"}
)

// Rules maps every temperature term to the fan speed term it activates.
// Each fan speed term has exactly one contributing rule, so no
// aggregation of firing strengths takes place.
var Rules = [TemperatureTermCount]FanSpeedTerm{
	Cold:    Slow,
	Neutral: Medium,
	Hot:     Fast,
}

func TemperatureTerms() []TemperatureTerm {
	return []TemperatureTerm{Cold, Neutral, Hot}
}

func FanSpeedTerms() []FanSpeedTerm {
	return []FanSpeedTerm{Slow, Medium, Fast}
}

func (t TemperatureTerm) String() string {
	if !t.valid() {
		return fmt.Sprintf("TemperatureTerm(%d)", int(t))
	}
	return temperatureTermNames[t]
}

func (t TemperatureTerm) valid() bool {
	return t >= 0 && t < TemperatureTermCount
}

func (t TemperatureTerm) mustBeValid() {
	if !t.valid() {
		panic(fmt.Sprintf("unknown temperature term: %d", int(t)))
	}
}

func (t FanSpeedTerm) String() string {
	if !t.valid() {
		return fmt.Sprintf("FanSpeedTerm(%d)", int(t))
	}
	return fanSpeedTermNames[t]
}

func (t FanSpeedTerm) valid() bool {
	return t >= 0 && t < FanSpeedTermCount
}

func (t FanSpeedTerm) mustBeValid() {
	if !t.valid() {
		panic(fmt.Sprintf("unknown fan speed term: %d", int(t)))
	}
}

// ParseTemperatureTerm resolves a (lower case) term name as used in the configuration.
func ParseTemperatureTerm(name string) (TemperatureTerm, error) {
	for i, n := range temperatureTermNames {
		if n == name {
			return TemperatureTerm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown temperature term '%s', use one of: cold | neutral | hot", name)
}

// ParseFanSpeedTerm resolves a (lower case) term name as used in the configuration.
func ParseFanSpeedTerm(name string) (FanSpeedTerm, error) {
	for i, n := range fanSpeedTermNames {
		if n == name {
			return FanSpeedTerm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fan speed term '%s', use one of: slow | medium | fast", name)
}
