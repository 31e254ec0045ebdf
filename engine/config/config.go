// Package config loads the orbit viewer settings from a TOML file and keeps them
// in sync with the file while the viewer runs.
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a configuration parses but holds values the viewer cannot use.
var ErrInvalidConfig = errors.New("invalid config")

// Projection names accepted by CameraConfig.Projection.
const (
	ProjectionPerspective  = "perspective"
	ProjectionOrthographic = "orthographic"
)

// Config is the complete viewer configuration.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Camera   CameraConfig   `toml:"camera"`
	Controls ControlsConfig `toml:"controls"`
	Renderer RendererConfig `toml:"renderer"`
}

// WindowConfig configures the platform window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// CameraConfig configures the viewer camera.
type CameraConfig struct {
	Projection string     `toml:"projection"`
	Position   [3]float64 `toml:"position"`
	Target     [3]float64 `toml:"target"`
	Fov        float64    `toml:"fov"`

	// OrthoHalfHeight is the half height of the orthographic view volume at zoom 1.
	OrthoHalfHeight float64 `toml:"ortho_half_height"`

	// Orbit is an optional initial "theta,phi" descriptor.
	Orbit string `toml:"orbit"`
}

// ControlsConfig configures the orbit controls. Angles are in degrees;
// TOML's inf and -inf leave a bound open.
type ControlsConfig struct {
	Damping            float64 `toml:"damping"`
	RotateSpeed        float64 `toml:"rotate_speed"`
	ZoomSpeed          float64 `toml:"zoom_speed"`
	PanSpeed           float64 `toml:"pan_speed"`
	KeyPanSpeed        float64 `toml:"key_pan_speed"`
	ScreenSpacePanning bool    `toml:"screen_space_panning"`
	AutoRotateSpeed    float64 `toml:"auto_rotate_speed"`

	MinDistance float64 `toml:"min_distance"`
	MaxDistance float64 `toml:"max_distance"`
	MinZoom     float64 `toml:"min_zoom"`
	MaxZoom     float64 `toml:"max_zoom"`

	MinPolarDeg   float64 `toml:"min_polar_deg"`
	MaxPolarDeg   float64 `toml:"max_polar_deg"`
	MinAzimuthDeg float64 `toml:"min_azimuth_deg"`
	MaxAzimuthDeg float64 `toml:"max_azimuth_deg"`
}

// RendererConfig configures presentation and the reference grid.
type RendererConfig struct {
	VSync          bool       `toml:"vsync"`
	ClearColor     [4]float64 `toml:"clear_color"`
	GridHalfExtent int        `toml:"grid_half_extent"`
	GridSpacing    float64    `toml:"grid_spacing"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "oxy-orbit viewer",
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			Projection:      ProjectionPerspective,
			Position:        [3]float64{0, 5, 10},
			Fov:             50,
			OrthoHalfHeight: 5,
		},
		Controls: ControlsConfig{
			Damping:       0.05,
			RotateSpeed:   1,
			ZoomSpeed:     1,
			PanSpeed:      1,
			KeyPanSpeed:   7,
			MinDistance:   1,
			MaxDistance:   100,
			MinZoom:       0.1,
			MaxZoom:       20,
			MinPolarDeg:   0,
			MaxPolarDeg:   180,
			MinAzimuthDeg: math.Inf(-1),
			MaxAzimuthDeg: math.Inf(1),
		},
		Renderer: RendererConfig{
			VSync:          true,
			ClearColor:     [4]float64{0.1, 0.1, 0.1, 1},
			GridHalfExtent: 10,
			GridSpacing:    1,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep their default.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
//
// Parameters:
//   - data: TOML document
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the document is malformed or holds invalid values
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first value the viewer cannot use, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Camera.Projection {
	case ProjectionPerspective, ProjectionOrthographic:
	default:
		return invalid("unknown projection %q", c.Camera.Projection)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return invalid("fov %v", c.Camera.Fov)
	}
	if c.Camera.OrthoHalfHeight <= 0 {
		return invalid("ortho_half_height %v", c.Camera.OrthoHalfHeight)
	}
	if c.Camera.Orbit != "" {
		if _, _, err := controls.ParseOrbit(c.Camera.Orbit); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	ctl := c.Controls
	if ctl.Damping < 0 || ctl.Damping > 1 {
		return invalid("damping %v outside [0, 1]", ctl.Damping)
	}
	if ctl.MinDistance < 0 || ctl.MinDistance > ctl.MaxDistance {
		return invalid("distance range [%v, %v]", ctl.MinDistance, ctl.MaxDistance)
	}
	if ctl.MinZoom < 0 || ctl.MinZoom > ctl.MaxZoom {
		return invalid("zoom range [%v, %v]", ctl.MinZoom, ctl.MaxZoom)
	}
	if ctl.MinPolarDeg < 0 || ctl.MaxPolarDeg > 180 || ctl.MinPolarDeg > ctl.MaxPolarDeg {
		return invalid("polar range [%v, %v]", ctl.MinPolarDeg, ctl.MaxPolarDeg)
	}
	if math.IsNaN(ctl.MinAzimuthDeg) || math.IsNaN(ctl.MaxAzimuthDeg) {
		return invalid("azimuth bounds must not be nan")
	}

	if c.Renderer.GridHalfExtent < 0 || c.Renderer.GridSpacing <= 0 {
		return invalid("grid %d x %v", c.Renderer.GridHalfExtent, c.Renderer.GridSpacing)
	}
	return nil
}

// Orthographic reports whether the camera uses an orthographic projection.
func (c Config) Orthographic() bool {
	return c.Camera.Projection == ProjectionOrthographic
}

// Orbit returns the parsed initial orbit, if one is configured.
//
// Returns:
//   - theta, phi: the orbit angles in radians
//   - ok: false when no orbit is configured
func (c Config) Orbit() (theta, phi float64, ok bool) {
	if c.Camera.Orbit == "" {
		return 0, 0, false
	}
	theta, phi, err := controls.ParseOrbit(c.Camera.Orbit)
	if err != nil {
		return 0, 0, false
	}
	return theta, phi, true
}

// WindowOptions converts the window section into window builder options.
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithSize(c.Window.Width, c.Window.Height),
	}
}

// OrthoFrustum returns the orthographic view rectangle for the given aspect ratio.
func (c Config) OrthoFrustum(aspect float64) (left, right, top, bottom float64) {
	h := c.Camera.OrthoHalfHeight
	return -h * aspect, h * aspect, h, -h
}

// ResizeCamera fits the camera projection to a new viewport size.
// Perspective cameras take the new aspect ratio, orthographic cameras a frustum rebuilt
// from OrthoHalfHeight. Empty viewports leave the camera untouched.
//
// Parameters:
//   - cam: the camera to resize
//   - width: viewport width in pixels
//   - height: viewport height in pixels
func (c Config) ResizeCamera(cam camera.Camera, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float64(width) / float64(height)
	switch cam.Kind() {
	case camera.ProjectionPerspective:
		if p, ok := cam.(camera.PerspectiveCamera); ok {
			p.SetAspect(aspect)
		}
	case camera.ProjectionOrthographic:
		if o, ok := cam.(camera.OrthographicCamera); ok {
			o.SetFrustum(c.OrthoFrustum(aspect))
		}
	case camera.ProjectionUnknown:
		log.Printf("[Config] camera projection %s cannot be resized", cam.Kind())
		return
	}
	cam.UpdateProjectionMatrix()
}

// CameraOptions converts the camera section into camera builder options.
//
// Parameters:
//   - aspect: the initial viewport aspect ratio
//
// Returns:
//   - []camera.CameraBuilderOption: options for the configured projection
func (c Config) CameraOptions(aspect float64) []camera.CameraBuilderOption {
	p := c.Camera.Position
	options := []camera.CameraBuilderOption{camera.WithPosition(p[0], p[1], p[2])}
	if c.Orthographic() {
		return append(options, camera.WithFrustum(c.OrthoFrustum(aspect)))
	}
	return append(options, camera.WithFov(c.Camera.Fov), camera.WithAspect(aspect))
}

// ControlsOptions converts the controls section into orbit controls builder options.
func (c Config) ControlsOptions() []controls.OrbitControlsBuilderOption {
	ctl := c.Controls
	t := c.Camera.Target
	options := []controls.OrbitControlsBuilderOption{
		controls.WithTarget(mgl64.Vec3{t[0], t[1], t[2]}),
		controls.WithSpeeds(ctl.RotateSpeed, ctl.ZoomSpeed, ctl.PanSpeed),
		controls.WithKeyPanSpeed(ctl.KeyPanSpeed),
		controls.WithScreenSpacePanning(ctl.ScreenSpacePanning),
		controls.WithLimits(c.limits()),
	}
	if ctl.Damping > 0 {
		options = append(options, controls.WithDamping(ctl.Damping))
	}
	if ctl.AutoRotateSpeed != 0 {
		options = append(options, controls.WithAutoRotate(ctl.AutoRotateSpeed))
	}
	return options
}

// ApplyControls pushes the controls section onto live controls, as after a file reload.
// The target and camera placement are left alone.
func (c Config) ApplyControls(oc controls.OrbitControls) {
	ctl := c.Controls
	oc.SetEnableDamping(ctl.Damping > 0)
	if ctl.Damping > 0 {
		oc.SetDampingFactor(ctl.Damping)
	}
	oc.SetRotateSpeed(ctl.RotateSpeed)
	oc.SetZoomSpeed(ctl.ZoomSpeed)
	oc.SetPanSpeed(ctl.PanSpeed)
	oc.SetKeyPanSpeed(ctl.KeyPanSpeed)
	oc.SetScreenSpacePanning(ctl.ScreenSpacePanning)
	oc.SetAutoRotate(ctl.AutoRotateSpeed != 0)
	if ctl.AutoRotateSpeed != 0 {
		oc.SetAutoRotateSpeed(ctl.AutoRotateSpeed)
	}

	l := c.limits()
	oc.SetMinDistance(l.MinDistance)
	oc.SetMaxDistance(l.MaxDistance)
	oc.SetMinZoom(l.MinZoom)
	oc.SetMaxZoom(l.MaxZoom)
	oc.SetMinPolarAngle(l.MinPolarAngle)
	oc.SetMaxPolarAngle(l.MaxPolarAngle)
	oc.SetMinAzimuthAngle(l.MinAzimuthAngle)
	oc.SetMaxAzimuthAngle(l.MaxAzimuthAngle)
}

// RendererOptions converts the renderer section into renderer builder options.
func (c Config) RendererOptions() []renderer.RendererBuilderOption {
	mode := renderer.PresentModeUncapped
	if c.Renderer.VSync {
		mode = renderer.PresentModeVSync
	}
	cc := c.Renderer.ClearColor
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithClearColor(renderer.ClearColor{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}),
		renderer.WithGrid(c.Renderer.GridHalfExtent, float32(c.Renderer.GridSpacing)),
	}
}

func (c Config) limits() controls.Limits {
	ctl := c.Controls
	return controls.Limits{
		MinDistance:     ctl.MinDistance,
		MaxDistance:     ctl.MaxDistance,
		MinZoom:         ctl.MinZoom,
		MaxZoom:         ctl.MaxZoom,
		MinPolarAngle:   mgl64.DegToRad(ctl.MinPolarDeg),
		MaxPolarAngle:   mgl64.DegToRad(ctl.MaxPolarDeg),
		MinAzimuthAngle: mgl64.DegToRad(ctl.MinAzimuthDeg),
		MaxAzimuthAngle: mgl64.DegToRad(ctl.MaxAzimuthDeg),
	}
}
