package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
title = "orbit"

[camera]
projection = "orthographic"
orbit = "90deg,45deg"

[controls]
damping = 0.1
min_azimuth_deg = -45.0
max_azimuth_deg = 45.0
max_distance = inf
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window.Title != "orbit" || cfg.Window.Width != 1280 {
		t.Errorf("expected title override with default width, got %+v", cfg.Window)
	}
	if !cfg.Orthographic() {
		t.Error("expected orthographic projection")
	}
	if cfg.Controls.Damping != 0.1 || cfg.Controls.RotateSpeed != 1 {
		t.Errorf("unexpected controls %+v", cfg.Controls)
	}
	if !math.IsInf(cfg.Controls.MaxDistance, 1) {
		t.Errorf("expected unbounded max distance, got %v", cfg.Controls.MaxDistance)
	}
	theta, phi, ok := cfg.Orbit()
	if !ok || math.Abs(theta-math.Pi/2) > 1e-12 || math.Abs(phi-math.Pi/4) > 1e-12 {
		t.Errorf("expected orbit (π/2, π/4), got (%v, %v, %v)", theta, phi, ok)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"projection", "[camera]\nprojection = \"fisheye\""},
		{"window", "[window]\nwidth = 0"},
		{"damping", "[controls]\ndamping = 1.5"},
		{"distance", "[controls]\nmin_distance = 10.0\nmax_distance = 5.0"},
		{"polar", "[controls]\nmax_polar_deg = 200.0"},
		{"orbit", "[camera]\norbit = \"north\""},
		{"grid", "[renderer]\ngrid_spacing = 0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[controls\ndamping = "))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseAcceptsFullDamping(t *testing.T) {
	cfg, err := Parse([]byte("[controls]\ndamping = 1.0"))
	if err != nil {
		t.Fatalf("expected damping 1 to validate, got %v", err)
	}
	oc := controls.New(camera.NewPerspectiveCamera(), surface.NewEventTarget(), cfg.ControlsOptions()...)
	defer oc.Dispose()
	if !oc.EnableDamping() || oc.DampingFactor() != 1 {
		t.Errorf("expected damping 1, got %v/%v", oc.EnableDamping(), oc.DampingFactor())
	}
}

func TestResizeCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.OrthoHalfHeight = 5

	persp := camera.NewPerspectiveCamera(cfg.CameraOptions(1)...)
	cfg.ResizeCamera(persp, 800, 400)
	if persp.Aspect() != 2 {
		t.Errorf("expected aspect 2, got %v", persp.Aspect())
	}
	cfg.ResizeCamera(persp, 0, 400)
	if persp.Aspect() != 2 {
		t.Errorf("expected empty viewport ignored, got aspect %v", persp.Aspect())
	}

	cfg.Camera.Projection = ProjectionOrthographic
	ortho := camera.NewOrthographicCamera(cfg.CameraOptions(1)...)
	cfg.ResizeCamera(ortho, 300, 100)
	left, right, top, bottom := ortho.Frustum()
	if left != -15 || right != 15 || top != 5 || bottom != -5 {
		t.Errorf("expected frustum (-15, 15, 5, -5), got (%v, %v, %v, %v)", left, right, top, bottom)
	}
}

func TestControlsOptionsAndApply(t *testing.T) {
	cfg := Default()
	cfg.Controls.MinAzimuthDeg = -90
	cfg.Controls.MaxAzimuthDeg = 90
	cfg.Controls.AutoRotateSpeed = 3

	cam := camera.NewPerspectiveCamera(cfg.CameraOptions(1)...)
	oc := controls.New(cam, surface.NewEventTarget(), cfg.ControlsOptions()...)
	defer oc.Dispose()

	if !oc.EnableDamping() || oc.DampingFactor() != 0.05 {
		t.Errorf("expected damping 0.05, got %v/%v", oc.EnableDamping(), oc.DampingFactor())
	}
	if !oc.AutoRotate() || oc.AutoRotateSpeed() != 3 {
		t.Errorf("expected auto-rotate at 3, got %v/%v", oc.AutoRotate(), oc.AutoRotateSpeed())
	}
	if math.Abs(oc.MaxAzimuthAngle()-math.Pi/2) > 1e-12 || oc.MaxDistance() != 100 {
		t.Errorf("unexpected limits %+v", oc.Limits())
	}

	cfg.Controls.Damping = 0
	cfg.Controls.AutoRotateSpeed = 0
	cfg.Controls.MaxDistance = 50
	cfg.ApplyControls(oc)

	if oc.EnableDamping() || oc.AutoRotate() || oc.MaxDistance() != 50 {
		t.Errorf("expected reload to disable damping and auto-rotate, got %v/%v/%v",
			oc.EnableDamping(), oc.AutoRotate(), oc.MaxDistance())
	}
}

func TestCameraOptionsOrthographic(t *testing.T) {
	cfg := Default()
	cfg.Camera.Projection = ProjectionOrthographic
	cam := camera.NewOrthographicCamera(cfg.CameraOptions(2)...)
	l, r, top, b := cam.Frustum()
	if l != -10 || r != 10 || top != 5 || b != -5 {
		t.Errorf("expected frustum (-10, 10, 5, -5), got (%v, %v, %v, %v)", l, r, top, b)
	}
}

func TestWatcherDeliversReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	if err := os.WriteFile(path, []byte("[controls]\ndamping = 0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[controls]\ndamping = 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Changes():
			if cfg.Controls.Damping == 0.2 {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected second close to be a no-op, got %v", err)
	}
}
