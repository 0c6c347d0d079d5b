package ecs

// Clock is the monotonic time source the host advances once per tick. All
// debounce timestamps are read from Elapsed.
type Clock struct {
	delta   float64
	elapsed float64
	ticks   uint64
}

// Advance moves the clock forward. Negative deltas are treated as zero.
func (c *Clock) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.delta = dt
	c.elapsed += dt
	c.ticks++
}

// Delta is the length of the current tick in seconds.
func (c *Clock) Delta() float64 {
	return c.delta
}

// Elapsed is the time since the world started, in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

func (c *Clock) Ticks() uint64 {
	return c.ticks
}
