// Package throttle implements a thread-safe fixed-window rate limiter.
//
// A Throttle admits up to Threshold calls per Timeout window and rejects the
// rest until a call observes that more than Timeout has passed since the
// window started. The window then restarts at that call's timestamp.
//
//	t := throttle.New(time.Second, 22)
//	if !t.Accept() {
//		// throttled
//	}
package throttle

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// epoch is the initial window start, so the first call always opens a window.
var epoch = time.Unix(0, 0)

// Throttle is a fixed-window admission counter. All state is guarded by a
// single mutex held for the whole check.
type Throttle struct {
	mu sync.Mutex

	name      string
	timeout   time.Duration
	threshold int
	clock     Clock
	log       *zap.Logger
	metrics   *Metrics

	windowStart time.Time
	count       int
}

func NewWithOptions(opt Options) *Throttle {
	t := &Throttle{
		name:        opt.Name,
		timeout:     opt.Timeout,
		threshold:   opt.Threshold,
		clock:       opt.Clock,
		log:         opt.Logger,
		metrics:     opt.Metrics,
		windowStart: epoch,
	}
	if t.threshold < 0 {
		t.threshold = 0
	}
	if t.clock == nil {
		t.clock = WallClock{}
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	return t
}

// New returns a throttle admitting threshold calls per timeout window using
// the wall clock.
func New(timeout time.Duration, threshold int) *Throttle {
	return NewWithOptions(Options{Timeout: timeout, Threshold: threshold})
}

// Accept reports whether the caller may proceed.
func (t *Throttle) Accept() bool {
	return t.DecideN(1).Allowed
}

// AcceptN reports whether n units fit into the current window. It admits all
// of them or none.
func (t *Throttle) AcceptN(n int) bool {
	return t.DecideN(n).Allowed
}

func (t *Throttle) Decide() Decision {
	return t.DecideN(1)
}

// DecideN is the admission check behind Accept and AcceptN. A cost below one
// is rejected without touching the window.
func (t *Throttle) DecideN(n int) (d Decision) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("throttle check failed",
				zap.String("name", t.name),
				zap.Error(fmt.Errorf("panic: %v", r)))
			t.metrics.observe(t.name, resultRejected)
			d = Decision{}
		}
	}()

	if n < 1 {
		t.metrics.observe(t.name, resultRejected)
		return Decision{Remaining: t.threshold - t.count}
	}

	now := t.clock.Now()
	if now.Before(t.windowStart) {
		t.log.Warn("clock moved backwards, rejecting",
			zap.String("name", t.name),
			zap.Time("now", now),
			zap.Time("window_start", t.windowStart))
		t.metrics.observe(t.name, resultClockSkew)
		return Decision{
			Remaining:  t.threshold - t.count,
			RetryAfter: t.windowStart.Sub(now),
		}
	}

	if now.Sub(t.windowStart) > t.timeout {
		t.count = 0
		t.windowStart = now
		t.metrics.reset(t.name)
		t.log.Debug("throttle window reset",
			zap.String("name", t.name),
			zap.Time("window_start", now))
	}

	// n <= threshold-count rather than count+n <= threshold, which can overflow.
	if n <= t.threshold-t.count {
		t.count += n
		t.metrics.observe(t.name, resultAdmitted)
		return Decision{Allowed: true, Remaining: t.threshold - t.count}
	}

	t.metrics.observe(t.name, resultRejected)
	retry := t.windowStart.Add(t.timeout).Sub(now)
	if retry < 0 {
		retry = 0
	}
	return Decision{Remaining: t.threshold - t.count, RetryAfter: retry}
}

// Stats returns a copy of the current window state.
func (t *Throttle) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Stats{
		Timeout:     t.timeout,
		Threshold:   t.threshold,
		Count:       t.count,
		WindowStart: t.windowStart,
	}
}
