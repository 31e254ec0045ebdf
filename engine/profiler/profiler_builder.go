package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often statistics are logged. Values <= 0 are ignored.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithClock replaces time.Now as the profiler's time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// WithMemoryStats adds heap and GC figures to each report.
//
// Parameters:
//   - enabled: if true, runtime memory statistics are read each interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithMemoryStats(enabled bool) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.memoryEnabled = enabled
	}
}
