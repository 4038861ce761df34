package sim

import "time"

// FixedClock reports the same step every tick.
type FixedClock struct {
	Step float64
}

// DeltaTimeSeconds implements ai.Clock.
func (c FixedClock) DeltaTimeSeconds() float64 { return c.Step }

// WallClock reports real elapsed time between calls, clamped to MaxDelta so a
// stalled process does not teleport everything on resume.
type WallClock struct {
	MaxDelta float64

	now  func() time.Time
	last time.Time
}

// NewWallClock starts measuring from now.
func NewWallClock(maxDelta float64) *WallClock {
	return newWallClock(maxDelta, time.Now)
}

func newWallClock(maxDelta float64, now func() time.Time) *WallClock {
	return &WallClock{MaxDelta: maxDelta, now: now, last: now()}
}

// DeltaTimeSeconds implements ai.Clock.
func (c *WallClock) DeltaTimeSeconds() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t

	if dt < 0 {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}
