package throttle

import "time"

// Clock is the time source consulted once per admission check.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// WallClock reads the system wall clock with the monotonic reading stripped,
// so clock adjustments that move time backwards are seen (and rejected) by
// the throttle.
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now().Round(0)
}

// MonotonicClock keeps Go's monotonic reading. Elapsed time can then never be
// negative, so backwards-clock rejections do not occur.
type MonotonicClock struct{}

func (MonotonicClock) Now() time.Time {
	return time.Now()
}
