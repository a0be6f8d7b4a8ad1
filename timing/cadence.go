// Package timing converts the fixed per-frame delta of the game loop into
// discrete fires of independent cadences.
package timing

import "time"

// Cadence fires once for every Interval of accumulated time. Leftover time
// carries into the next Advance so long runs never drift.
type Cadence struct {
	Interval time.Duration
	elapsed  time.Duration
}

func NewCadence(interval time.Duration) Cadence {
	return Cadence{Interval: interval}
}

// Advance adds dt and returns how many intervals completed. Callers must
// process every fire; a large dt yields several.
func (c *Cadence) Advance(dt time.Duration) int {
	if c.Interval <= 0 || dt <= 0 {
		return 0
	}
	c.elapsed += dt
	n := int(c.elapsed / c.Interval)
	c.elapsed -= time.Duration(n) * c.Interval
	return n
}

// Reset drops any accumulated time.
func (c *Cadence) Reset() {
	c.elapsed = 0
}

// FrameDelta is the scheduler delta of a single game-loop update.
func FrameDelta(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
