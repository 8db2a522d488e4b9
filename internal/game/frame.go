package game

import "time"

// referenceFrameMS is the frame length all per-frame speeds are tuned for.
const referenceFrameMS = 16.6667

// FrameClock converts wall-clock time between ticks into a frame scale, so
// movement speed does not depend on the frame rate.
type FrameClock struct {
	last time.Time
}

// Tick returns the elapsed time since the previous tick in reference
// frames. The first tick returns 1.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 1
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return float64(elapsed.Microseconds()) / 1000 / referenceFrameMS
}
