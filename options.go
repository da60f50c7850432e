package chrono

import (
	"time"

	"github.com/hoyle1974/chrono/telemetry"
)

type Option func(*schedule)

// WithLogger sets where the schedule logs. The default discards everything.
func WithLogger(l telemetry.Logger) Option {
	return func(s *schedule) {
		s.log = telemetry.OrNOP(l)
	}
}

// WithMetrics sets where the schedule reports entry counts and cache ratios.
func WithMetrics(m telemetry.Metrics) Option {
	return func(s *schedule) {
		if m == nil {
			m = telemetry.NOPMetrics{}
		}
		s.metrics = m
	}
}

// WithCacheExpiration sets how long decoded entries stay cached.
func WithCacheExpiration(d time.Duration) Option {
	return func(s *schedule) {
		s.cache = newEntryCache(d)
	}
}
