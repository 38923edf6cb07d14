package fuzzy

import "github.com/markusressel/fuzzyfan/internal/util"

// Fou is the footprint of uncertainty of a temperature term.
// Lower is subtracted from, Upper is added to the crisp membership degree.
type Fou struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Interval is the type-2 membership of a single term at a single input value.
// Both bounds are clamped to [0..1] independently, so Upper >= Lower
// is not guaranteed.
type Interval struct {
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// Widen turns the crisp degree m into an interval using this footprint.
func (f Fou) Widen(m float64) Interval {
	return Interval{
		Upper: util.Clamp(m+f.Upper, 0, 1),
		Lower: util.Clamp(m-f.Lower, 0, 1),
	}
}
