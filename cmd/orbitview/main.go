// Command orbitview opens a window with a reference grid and an orbit camera.
//
// Drag with the left mouse button to rotate, the middle button or wheel to dolly
// and the right button (or shift-drag) to pan. Arrow keys pan, R resets the view
// and Space toggles auto-rotation.
package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	watch := flag.Bool("watch", false, "reload the controls section when the config file changes")
	orbit := flag.String("orbit", "", `initial orbit as "theta,phi" (e.g. "45deg,60deg")`)
	ortho := flag.Bool("ortho", false, "use an orthographic camera")
	damping := flag.Float64("damping", 0.05, "damping factor, 0 disables damping")
	autoRotate := flag.Float64("auto-rotate", 0, "auto-rotate speed, 0 disables auto-rotation")
	profile := flag.Bool("profile", false, "log frame and camera statistics every second")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags given explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "orbit":
			cfg.Camera.Orbit = *orbit
		case "ortho":
			if *ortho {
				cfg.Camera.Projection = config.ProjectionOrthographic
			} else {
				cfg.Camera.Projection = config.ProjectionPerspective
			}
		case "damping":
			cfg.Controls.Damping = *damping
		case "auto-rotate":
			cfg.Controls.AutoRotateSpeed = *autoRotate
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	w := window.NewWindow(cfg.WindowOptions()...)
	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithTickRate(60),
		engine.WithProfiling(*profile),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithMemoryStats(*profile))),
	)

	aspect := float64(w.Width()) / float64(w.Height())
	var cam camera.Camera
	if cfg.Orthographic() {
		cam = camera.NewOrthographicCamera(cfg.CameraOptions(aspect)...)
	} else {
		cam = camera.NewPerspectiveCamera(cfg.CameraOptions(aspect)...)
	}

	orbitControls := controls.New(cam, w, cfg.ControlsOptions()...)
	defer orbitControls.Dispose()

	orbitControls.ListenToKeyEvents(w)
	orbitControls.Subscribe(controls.EventChange, func(controls.Event) {
		e.Profiler().CountChange()
	})
	orbitControls.Subscribe(controls.EventStart, func(ev controls.Event) {
		log.Printf("[Viewer] %s started", ev.State)
	})

	if theta, phi, ok := cfg.Orbit(); ok {
		if !orbitControls.SetOrbit(theta, phi) {
			log.Printf("[Viewer] orbit %q was not applied", cfg.Camera.Orbit)
		}
		orbitControls.SaveState()
	}

	w.AddEventListener(surface.EventKeyDown, func(ev *surface.Event) {
		switch ev.Code {
		case common.KeyR:
			orbitControls.Reset()
		case common.KeySpace:
			orbitControls.SetAutoRotate(!orbitControls.AutoRotate())
		}
	})

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		var err error
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("failed to watch config: %v", err)
		}
		defer watcher.Close()
	}

	r, err := renderer.NewRenderer(w, cfg.RendererOptions()...)
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}
	defer r.Release()

	w.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		cfg.ResizeCamera(cam, width, height)
	})

	e.SetTickCallback(func(float32) {
		if watcher != nil {
			select {
			case reloaded := <-watcher.Changes():
				reloaded.ApplyControls(orbitControls)
				log.Printf("[Viewer] reloaded controls from %s", *configPath)
			default:
			}
		}
		orbitControls.Update()
	})
	e.SetRenderCallback(func(float32) {
		r.WriteCamera(cam.Uniform())
		if err := r.RenderFrame(); err != nil {
			log.Printf("[Viewer] %v", err)
		}
	})

	e.Run()
}
