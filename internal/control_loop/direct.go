package control_loop

import (
	"math"
	"time"

	"github.com/markusressel/fuzzyfan/internal/util"
)

// DirectControlLoop is a very simple control that directly applies the given
// target. It can also be used to gracefully approach the target by
// utilizing the "maxChangePerSecond" property.
type DirectControlLoop struct {
	// limits the maximum allowed change per second, nil means unlimited
	maxChangePerSecond *float64

	initialized bool
	lastOutput  float64
	lastTime    time.Time
	now         func() time.Time
}

// NewDirectControlLoop creates a DirectControlLoop, which is a very simple control that directly applies the given
// target. It can also be used to gracefully approach the target by
// utilizing the "maxChangePerSecond" property.
func NewDirectControlLoop(
	// can be used to limit the maximum allowed change per second
	maxChangePerSecond *float64,
) *DirectControlLoop {
	return &DirectControlLoop{
		maxChangePerSecond: maxChangePerSecond,
		now:                time.Now,
	}
}

func (l *DirectControlLoop) Cycle(target float64) float64 {
	loopTime := l.now()

	if !l.initialized || l.maxChangePerSecond == nil {
		l.initialized = true
		l.lastTime = loopTime
		l.lastOutput = target
		return target
	}

	dt := loopTime.Sub(l.lastTime).Seconds()
	l.lastTime = loopTime

	// the adjustment depends on the direction and
	// the time-based change speed limit.
	maxChangeThisStep := math.Max(0, *l.maxChangePerSecond*dt)
	err := target - l.lastOutput
	l.lastOutput += util.Clamp(err, -maxChangeThisStep, maxChangeThisStep)

	return l.lastOutput
}
