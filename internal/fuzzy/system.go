package fuzzy

// System is an interval type-2 fuzzy system mapping a temperature to a fan speed.
// It is a plain value: evaluating it never modifies it, so it can be shared
// between goroutines as long as nobody writes to it.
type System struct {
	Temperature [TemperatureTermCount]Triangle
	Fou         [TemperatureTermCount]Fou
	FanSpeed    [FanSpeedTermCount]Triangle

	// WidenOutsideSupport applies the footprint of uncertainty even where the
	// crisp membership degree is 0. When false, a term has the interval (0, 0)
	// outside of its support.
	WidenOutsideSupport bool
}

// Activations holds the firing strength of every fan speed term.
type Activations [FanSpeedTermCount]float64

// Evaluation contains all intermediate values of a single evaluation.
type Evaluation struct {
	Temperature float64
	Memberships [TemperatureTermCount]float64
	Intervals   [TemperatureTermCount]Interval
	Activations Activations
	FanSpeed    float64
}

// DefaultSystem returns the built-in term definitions.
func DefaultSystem() System {
	return System{
		Temperature: [TemperatureTermCount]Triangle{
			Cold:    {Left: 0, Peak: 10, Right: 20},
			Neutral: {Left: 15, Peak: 25, Right: 35},
			Hot:     {Left: 30, Peak: 40, Right: 50},
		},
		Fou: [TemperatureTermCount]Fou{
			Cold:    {Lower: 0.2, Upper: 0.3},
			Neutral: {Lower: 0.3, Upper: 0.4},
			Hot:     {Lower: 0.2, Upper: 0.3},
		},
		FanSpeed: [FanSpeedTermCount]Triangle{
			Slow:   {Left: 0, Peak: 25, Right: 50},
			Medium: {Left: 25, Peak: 50, Right: 75},
			Fast:   {Left: 50, Peak: 75, Right: 100},
		},
	}
}

func (s System) TemperatureSet(term TemperatureTerm) Triangle {
	term.mustBeValid()
	return s.Temperature[term]
}

func (s System) FanSpeedSet(term FanSpeedTerm) Triangle {
	term.mustBeValid()
	return s.FanSpeed[term]
}

func (s System) FootprintOfUncertainty(term TemperatureTerm) Fou {
	term.mustBeValid()
	return s.Fou[term]
}

// Membership returns the crisp (type-1) membership degree of x in the given temperature term.
func (s System) Membership(x float64, term TemperatureTerm) float64 {
	return s.TemperatureSet(term).Membership(x)
}

// IntervalMembership returns the type-2 membership interval of x in the given temperature term.
func (s System) IntervalMembership(x float64, term TemperatureTerm) Interval {
	m := s.Membership(x, term)
	if m == 0 && !s.WidenOutsideSupport {
		return Interval{}
	}
	return s.FootprintOfUncertainty(term).Widen(m)
}

// Activations applies the rule table to the upper membership degrees of all temperature terms.
func (s System) Activations(temperature float64) (result Activations) {
	for _, term := range TemperatureTerms() {
		upper := s.IntervalMembership(temperature, term).Upper
		if upper > 0 {
			result[Rules[term]] += upper
		}
	}
	return result
}

// Defuzzify computes the weighted centroid of the fan speed term midpoints.
// Returns 0 if no term is activated.
func (s System) Defuzzify(activations Activations) float64 {
	weightedSum := 0.0
	totalWeight := 0.0
	for _, term := range FanSpeedTerms() {
		value := activations[term]
		if value > 0 {
			weightedSum += s.FanSpeedSet(term).Midpoint() * value
			totalWeight += value
		}
	}

	if totalWeight > 0 {
		return weightedSum / totalWeight
	}
	return 0
}

// Run returns the recommended fan speed for the given temperature.
func (s System) Run(temperature float64) float64 {
	return s.Defuzzify(s.Activations(temperature))
}

// Evaluate is like Run, but also returns all intermediate values.
func (s System) Evaluate(temperature float64) Evaluation {
	result := Evaluation{
		Temperature: temperature,
	}
	for _, term := range TemperatureTerms() {
		result.Memberships[term] = s.Membership(temperature, term)
		result.Intervals[term] = s.IntervalMembership(temperature, term)
	}
	result.Activations = s.Activations(temperature)
	result.FanSpeed = s.Defuzzify(result.Activations)
	return result
}

// Dominant returns the fan speed term with the highest activation
// and false if no term is activated at all.
func (a Activations) Dominant() (FanSpeedTerm, bool) {
	best := Slow
	found := false
	for _, term := range FanSpeedTerms() {
		if a[term] > 0 && (!found || a[term] > a[best]) {
			best = term
			found = true
		}
	}
	return best, found
}

// IsZero reports whether no fan speed term is activated.
func (a Activations) IsZero() bool {
	_, found := a.Dominant()
	return !found
}
