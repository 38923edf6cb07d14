package fuzzy

import (
	"math"

	"github.com/markusressel/fuzzyfan/internal/util"
)

// Triangle is a triangular membership function rising from 0 at Left
// to 1 at Peak and falling back to 0 at Right.
type Triangle struct {
	Left  float64 `json:"left" yaml:"left"`
	Peak  float64 `json:"peak" yaml:"peak"`
	Right float64 `json:"right" yaml:"right"`
}

// Membership returns the degree of membership of x, in [0..1].
// A degenerate segment (Left == Peak or Peak == Right) behaves like a step:
// the degree is 1 at x == Peak and 0 outside of (Left, Right).
func (t Triangle) Membership(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if x == t.Peak {
		return 1
	}
	if x <= t.Left || x >= t.Right {
		return 0
	}
	if x < t.Peak {
		return util.Ratio(x, t.Left, t.Peak)
	}
	return util.Ratio(x, t.Right, t.Peak)
}

// Midpoint is the average of Left and Right, the peak is ignored.
func (t Triangle) Midpoint() float64 {
	return (t.Left + t.Right) / 2
}

// IsOrdered reports whether Left <= Peak <= Right holds (false for NaN values).
func (t Triangle) IsOrdered() bool {
	return t.Left <= t.Peak && t.Peak <= t.Right
}
