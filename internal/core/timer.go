package core

import "time"

// FixedStep hands out a constant time step, for tests and headless runs.
type FixedStep struct {
	step time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Seconds returns the step length in seconds.
func (f *FixedStep) Seconds() float64 { return f.step.Seconds() }

// FrameClock measures the real time elapsed between successive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock returns a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Delta returns the seconds elapsed since the previous call. The first call
// after construction or Restart returns 0.
func (c *FrameClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return d.Seconds()
}

// Restart forgets the previous frame so that a pause does not produce one
// huge step when the loop resumes.
func (c *FrameClock) Restart() {
	c.last = time.Time{}
}
