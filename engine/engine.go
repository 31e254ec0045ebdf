package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// maxFrameDelta caps how much simulated time a single frame may catch up on,
// so a stalled frame (window drag, breakpoint) does not trigger a burst of ticks.
const maxFrameDelta = 250 * time.Millisecond

// engine implements the Engine interface.
// Drives input, fixed-rate ticks and rendering from the window's message loop goroutine.
type engine struct {
	window window.Window

	quit atomic.Bool

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// frame timing
	lastFrame   time.Time
	accumulator time.Duration
	now         func() time.Time
	sleep       func(time.Duration)
}

// Engine is the main entry point for the viewer.
// It runs the window message loop and, on the same goroutine, fires the fixed-rate
// tick callback and the per-frame render callback. Input handlers, ticks and
// renders therefore never overlap.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Profiler returns the engine's profiler so callers can feed it extra counters.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler instance
	Profiler() *profiler.Profiler

	// SetTickRate sets the engine tick rate in ticks per second.
	// The tick callback will be called at this rate for camera and input updates.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the tick length in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	// Use this for GPU buffer updates and presenting.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the frame delta in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the main loop (blocks until the window closes or Quit is called).
	Run()

	// Quit asks the main loop to close the window at the start of the next frame.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	return newEngine(options...)
}

func newEngine(options ...EngineBuilderOption) *engine {
	e := &engine{
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		now:              time.Now,
		sleep:            time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] Run called without a window")
		return
	}
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

// frame is the window update callback: one iteration of the main loop.
func (e *engine) frame() {
	if e.quit.Load() {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
		return
	}

	start := e.now()
	e.step(start)

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

// step advances the simulation to now with fixed-length ticks, then renders once.
//
// Parameters:
//   - now: the current frame time
//
// Returns:
//   - int: number of ticks fired
func (e *engine) step(now time.Time) int {
	delta := now.Sub(e.lastFrame)
	e.lastFrame = now
	if delta < 0 {
		delta = 0
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	e.accumulator += delta
	ticks := 0
	tickSeconds := float32(e.engineTickRate.Seconds())
	for e.accumulator >= e.engineTickRate {
		e.accumulator -= e.engineTickRate
		ticks++
		if e.tickCallback != nil {
			e.tickCallback(tickSeconds)
		}
		e.profiler.CountTick()
	}

	if e.renderCallback != nil {
		e.renderCallback(float32(delta.Seconds()))
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
	return ticks
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

// SetTickRate sets the engine tick rate in ticks per second.
// Takes effect on the next frame since ticks run on the loop goroutine.
func (e *engine) SetTickRate(fps float64) {
	e.engineTickRate = tickDuration(fps)
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameLimit(fps)
}

func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
