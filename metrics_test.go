package throttle

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	now := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	th := NewWithOptions(Options{
		Timeout:   time.Second,
		Threshold: 2,
		Name:      "api",
		Clock:     ClockFunc(func() time.Time { return now }),
		Metrics:   m,
	})

	for i := 0; i < 5; i++ {
		th.Accept()
	}
	now = now.Add(-time.Millisecond)
	th.Accept()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisions.WithLabelValues("api", resultAdmitted)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.decisions.WithLabelValues("api", resultRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("api", resultClockSkew)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resets.WithLabelValues("api")))

	n, err := testutil.GatherAndCount(reg, "throttle_decisions_total", "throttle_window_resets_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe("x", resultAdmitted)
		m.reset("x")
	})
}
