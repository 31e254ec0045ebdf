package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one interval's worth of frame and camera statistics.
type Stats struct {
	// FPS is the number of rendered frames per second over the interval.
	FPS float64

	// TPS is the number of fixed-rate ticks per second over the interval.
	TPS float64

	// Changes is the number of camera change notifications in the interval.
	Changes int

	// Elapsed is the length of the interval.
	Elapsed time.Duration

	// HeapMB and AllocRateMB are only filled when memory statistics are enabled.
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
}

// Profiler tracks frame rate, tick rate and camera activity for the viewer.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount  int
	tickCount   int
	changeCount int

	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time

	memoryEnabled  bool
	memStats       runtime.MemStats
	lastTotalAlloc uint64

	last Stats
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second and the clock to time.Now.
//
// Parameters:
//   - options: functional options applied over the defaults
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// CountTick records one fixed-rate engine tick.
func (p *Profiler) CountTick() {
	p.tickCount++
}

// CountChange records one camera change notification.
func (p *Profiler) CountChange() {
	p.changeCount++
}

// Last returns the statistics of the most recently completed interval.
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per rendered frame.
// Logs the interval statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	seconds := elapsed.Seconds()
	stats := Stats{
		FPS:     float64(p.frameCount) / seconds,
		TPS:     float64(p.tickCount) / seconds,
		Changes: p.changeCount,
		Elapsed: elapsed,
	}

	if p.memoryEnabled {
		runtime.ReadMemStats(&p.memStats)
		stats.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
		stats.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds
		stats.GCCount = p.memStats.NumGC
		p.lastTotalAlloc = p.memStats.TotalAlloc

		log.Printf("[Profiler] FPS: %.2f | TPS: %.2f | Camera changes: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
			stats.FPS, stats.TPS, stats.Changes, stats.HeapMB, stats.AllocRateMB, stats.GCCount)
	} else {
		log.Printf("[Profiler] FPS: %.2f | TPS: %.2f | Camera changes: %d", stats.FPS, stats.TPS, stats.Changes)
	}

	p.last = stats
	p.frameCount = 0
	p.tickCount = 0
	p.changeCount = 0
	p.lastTime = currentTime
	return true
}
