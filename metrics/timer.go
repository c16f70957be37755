package metrics

import "time"

// Time starts timing stage and returns a func that records the elapsed time.
func (m *Metrics) Time(stage string) func() {
	start := time.Now()
	return func() {
		m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}
