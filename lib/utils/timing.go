package utils

import "time"

type DeltaTimer struct {
	time.Time
}

// Next returns the time since the previous call, or 0 on the first call.
func (d *DeltaTimer) Next() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := time.Now()

	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}

// FrameLimiter sleeps out the remainder of a frame so the loop does not
// exceed a given rate. A zero rate disables limiting.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
	sleep    func(time.Duration)
	clock    func() time.Time
}

func NewFrameLimiter(maxFPS int) *FrameLimiter {
	l := &FrameLimiter{sleep: time.Sleep, clock: time.Now}
	if maxFPS > 0 {
		l.interval = time.Second / time.Duration(maxFPS)
	}
	return l
}

// Wait blocks until at least one frame interval has passed since the
// previous Wait and returns how long it slept.
func (l *FrameLimiter) Wait() time.Duration {
	if l.interval == 0 {
		return 0
	}
	now := l.clock()
	if l.last.IsZero() {
		l.last = now
		return 0
	}
	remaining := l.interval - now.Sub(l.last)
	if remaining > 0 {
		l.sleep(remaining)
		now = now.Add(remaining)
	} else {
		remaining = 0
	}
	l.last = now
	return remaining
}
