package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExampleTemperature(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	result := system.Run(28)

	// THEN
	assert.Equal(t, 50.0, result)
}

func TestRunScenarios(t *testing.T) {
	// GIVEN
	system := DefaultSystem()
	expectedInputOutput := map[float64]float64{
		5:   25,
		28:  50,
		45:  75,
		10:  25,
		25:  50,
		40:  75,
		100: 0,
		-40: 0,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result := system.Run(input)

		// THEN
		assert.InDelta(t, output, result, 1e-9, "input=%v", input)
	}
}

func TestRunOverlappingTerms(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	// cold: m=0.2 -> upper 0.5, neutral: m=0.3 -> upper 0.7
	result := system.Run(18)

	// THEN
	expected := (25*0.5 + 50*0.7) / (0.5 + 0.7)
	assert.InDelta(t, expected, result, 1e-9)
}

func TestRunWidenOutsideSupport(t *testing.T) {
	// GIVEN
	system := DefaultSystem()
	system.WidenOutsideSupport = true

	// WHEN / THEN
	assert.InDelta(t, 50.0, system.Run(28), 1e-9)
	assert.InDelta(t, 125.0/3.0, system.Run(5), 1e-9)
	assert.InDelta(t, 50.0, system.Run(100), 1e-9)
}

func TestRunIsIdempotent(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	for x := -5.0; x <= 55; x += 0.1 {
		// WHEN
		first := system.Run(x)
		second := system.Run(x)

		// THEN
		assert.Equal(t, first, second)
	}
}

func TestRunDoesNotModifySystem(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	_ = system.Evaluate(28)

	// THEN
	assert.Equal(t, DefaultSystem(), system)
}

func TestActivationsFollowRuleTable(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	result := system.Activations(5)

	// THEN
	assert.InDelta(t, 0.8, result[Slow], 1e-12)
	assert.Equal(t, 0.0, result[Medium])
	assert.Equal(t, 0.0, result[Fast])
}

func TestActivationsOutsideAllTerms(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	result := system.Activations(100)

	// THEN
	assert.Equal(t, Activations{}, result)
	assert.True(t, result.IsZero())
}

func TestDefuzzifyZeroActivations(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	result := system.Defuzzify(Activations{})

	// THEN
	assert.Equal(t, 0.0, result)
}

func TestDefuzzifyWeightedCentroid(t *testing.T) {
	// GIVEN
	system := DefaultSystem()
	activations := Activations{Slow: 0.3, Medium: 1.0, Fast: 0.3}

	// WHEN
	result := system.Defuzzify(activations)

	// THEN
	assert.InDelta(t, 50.0, result, 1e-9)
}

func TestDefuzzifyIgnoresNegativeActivations(t *testing.T) {
	// GIVEN
	system := DefaultSystem()
	activations := Activations{Slow: -1, Medium: 0, Fast: 0.5}

	// WHEN
	result := system.Defuzzify(activations)

	// THEN
	assert.Equal(t, 75.0, result)
}

func TestEvaluate(t *testing.T) {
	// GIVEN
	system := DefaultSystem()

	// WHEN
	result := system.Evaluate(28)

	// THEN
	assert.Equal(t, 28.0, result.Temperature)
	assert.Equal(t, 0.0, result.Memberships[Cold])
	assert.InDelta(t, 0.7, result.Memberships[Neutral], 1e-12)
	assert.Equal(t, 0.0, result.Memberships[Hot])
	assert.Equal(t, 1.0, result.Intervals[Neutral].Upper)
	assert.Equal(t, Activations{Medium: 1.0}, result.Activations)
	assert.Equal(t, 50.0, result.FanSpeed)
}

func TestActivationsDominant(t *testing.T) {
	term, ok := Activations{Slow: 0.3, Medium: 1.0, Fast: 0.3}.Dominant()
	assert.True(t, ok)
	assert.Equal(t, Medium, term)

	term, ok = Activations{Slow: 0.0, Medium: 0.2, Fast: 0.8}.Dominant()
	assert.True(t, ok)
	assert.Equal(t, Fast, term)

	_, ok = Activations{}.Dominant()
	assert.False(t, ok)
}

func TestCustomSystem(t *testing.T) {
	// GIVEN
	system := DefaultSystem()
	system.FanSpeed[Medium] = Triangle{Left: 40, Peak: 60, Right: 80}

	// WHEN
	result := system.Run(28)

	// THEN
	assert.Equal(t, 60.0, result)
}

func TestUnknownTermPanics(t *testing.T) {
	system := DefaultSystem()

	assert.Panics(t, func() {
		system.Membership(28, TemperatureTerm(3))
	})
	assert.Panics(t, func() {
		system.FanSpeedSet(FanSpeedTerm(-1))
	})
	assert.Panics(t, func() {
		system.FootprintOfUncertainty(TemperatureTerm(42))
	})
}
