package throttle

import "time"

// Decision is the detailed outcome of a single admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is zero on admission. On rejection it is the time left in the
	// current window; a call made strictly later than that starts a new one.
	RetryAfter time.Duration
}

// Stats is a point-in-time copy of a throttle's state.
type Stats struct {
	Timeout     time.Duration
	Threshold   int
	Count       int
	WindowStart time.Time
}
