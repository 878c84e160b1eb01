package throttle

import (
	"time"

	"go.uber.org/zap"
)

// Options are static parameters of a throttle.
type Options struct {
	Timeout   time.Duration // window length, e.g., time.Second
	Threshold int           // admissions per window, e.g., 22; negative => 0
	Name      string        // label for logs and metrics
	Clock     Clock         // nil => WallClock
	Logger    *zap.Logger   // nil => zap.NewNop()
	Metrics   *Metrics      // nil => no metrics
}
