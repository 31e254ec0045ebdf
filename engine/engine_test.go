package engine

import (
	"testing"
	"time"
)

func TestStepFiresFixedTicks(t *testing.T) {
	e := newEngine(WithTickRate(60))
	start := time.Unix(0, 0)
	e.lastFrame = start

	var ticks int
	var tickLen float32
	e.SetTickCallback(func(dt float32) {
		ticks++
		tickLen = dt
	})
	var renders int
	var frameDelta float32
	e.SetRenderCallback(func(dt float32) {
		renders++
		frameDelta = dt
	})

	if n := e.step(start.Add(100 * time.Millisecond)); n != 6 {
		t.Fatalf("expected 6 ticks for 100ms at 60Hz, got %d", n)
	}
	if ticks != 6 || renders != 1 {
		t.Errorf("expected 6 tick and 1 render callbacks, got %d and %d", ticks, renders)
	}
	if tickLen < 0.0166 || tickLen > 0.0167 {
		t.Errorf("expected tick length ~1/60s, got %v", tickLen)
	}
	if frameDelta < 0.0999 || frameDelta > 0.1001 {
		t.Errorf("expected frame delta 0.1s, got %v", frameDelta)
	}
}

func TestStepCarriesRemainder(t *testing.T) {
	e := newEngine(WithTickRate(10))
	now := time.Unix(0, 0)
	e.lastFrame = now

	total := 0
	for i := 0; i < 4; i++ {
		now = now.Add(50 * time.Millisecond)
		total += e.step(now)
	}
	if total != 2 {
		t.Errorf("expected 2 ticks over 200ms at 10Hz, got %d", total)
	}
}

func TestStepCapsCatchUp(t *testing.T) {
	e := newEngine(WithTickRate(100))
	start := time.Unix(0, 0)
	e.lastFrame = start

	if n := e.step(start.Add(5 * time.Second)); n != 25 {
		t.Errorf("expected the catch-up cap to allow 25 ticks, got %d", n)
	}
}

func TestFrameLimitSleepsRemainder(t *testing.T) {
	e := newEngine(WithRenderFrameLimit(50))
	clock := time.Unix(0, 0)
	e.now = func() time.Time { return clock }
	e.lastFrame = clock

	var slept time.Duration
	e.sleep = func(d time.Duration) { slept = d }
	e.frame()

	if slept != 20*time.Millisecond {
		t.Errorf("expected to sleep 20ms, got %v", slept)
	}
}

func TestTickRateDefaults(t *testing.T) {
	e := newEngine(WithTickRate(-1))
	if e.engineTickRate != time.Second/60 {
		t.Errorf("expected 60Hz default, got %v", e.engineTickRate)
	}
	e.SetTickRate(30)
	if e.engineTickRate != time.Second/30 {
		t.Errorf("expected 30Hz, got %v", e.engineTickRate)
	}
	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Errorf("expected uncapped frames, got %v", e.renderFrameLimit)
	}
}

func TestProfilerCountsTicks(t *testing.T) {
	e := newEngine(WithProfiling(true))
	if e.Profiler() == nil {
		t.Fatal("expected a default profiler")
	}
	start := time.Unix(0, 0)
	e.lastFrame = start
	e.step(start.Add(50 * time.Millisecond))
	e.DisableProfiler()
	if e.profilingEnabled {
		t.Error("expected profiling to be disabled")
	}
}
