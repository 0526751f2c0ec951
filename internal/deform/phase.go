package deform

import (
	"fmt"
	gomath "math"
	"time"
)

// Reference phase divisors, in milliseconds per radian of phase.
const (
	DivisorSphere = 200.0
	DivisorSine   = 300.0
	DivisorWater  = 400.0
)

// PhaseClock turns monotonic elapsed time into an animation phase:
// elapsed milliseconds divided by Divisor.
type PhaseClock struct {
	divisor float64
	start   time.Time
	now     func() time.Time
}

// NewPhaseClock starts a clock at the current instant.
func NewPhaseClock(divisor float64) (*PhaseClock, error) {
	return NewPhaseClockFrom(divisor, time.Now)
}

// NewPhaseClockFrom starts a clock reading from now. The clock's zero is
// the first reading.
func NewPhaseClockFrom(divisor float64, now func() time.Time) (*PhaseClock, error) {
	if gomath.IsNaN(divisor) || gomath.IsInf(divisor, 0) || divisor <= 0 {
		return nil, fmt.Errorf("phase divisor must be a positive finite number, got %v", divisor)
	}
	return &PhaseClock{divisor: divisor, start: now(), now: now}, nil
}

// Divisor returns the milliseconds-per-radian divisor.
func (c *PhaseClock) Divisor() float64 {
	return c.divisor
}

// Phase returns the phase at the current instant.
func (c *PhaseClock) Phase() float64 {
	return c.PhaseAt(c.now().Sub(c.start))
}

// PhaseAt returns the phase after elapsed time.
func (c *PhaseClock) PhaseAt(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(time.Millisecond) / c.divisor
}
