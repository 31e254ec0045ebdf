package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func TestPerspectiveDefaults(t *testing.T) {
	c := NewPerspectiveCamera()
	if c.Kind() != ProjectionPerspective {
		t.Fatalf("expected perspective, got %s", c.Kind())
	}
	if c.Fov() != 50 || c.Aspect() != 1 {
		t.Errorf("unexpected defaults fov=%v aspect=%v", c.Fov(), c.Aspect())
	}
	want := mgl64.Perspective(mgl64.DegToRad(50), 1, 0.1, 2000)
	if !c.ProjectionMatrix().ApproxEqualThreshold(want, eps) {
		t.Errorf("projection mismatch:\n%v\n%v", c.ProjectionMatrix(), want)
	}
}

func TestLookAtAndViewMatrix(t *testing.T) {
	c := NewPerspectiveCamera(WithPosition(0, 0, 10))
	c.LookAt(mgl64.Vec3{})

	q := c.Orientation()
	if math.Abs(math.Abs(q.W)-1) > 1e-9 {
		t.Errorf("expected identity orientation, got %v", q)
	}

	origin := c.ViewMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	if origin.Vec3().Sub(mgl64.Vec3{0, 0, -10}).Len() > eps {
		t.Errorf("expected origin at (0,0,-10) in view space, got %v", origin)
	}
}

func TestLookAtFromSide(t *testing.T) {
	c := NewPerspectiveCamera(WithPosition(-10, 0, 0))
	c.LookAt(mgl64.Vec3{})

	forward := c.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
	if forward.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-9 {
		t.Errorf("expected forward +X, got %v", forward)
	}
}

func TestSetAspectRejectsInvalid(t *testing.T) {
	c := NewPerspectiveCamera(WithAspect(2))
	c.SetAspect(0)
	c.SetAspect(-1)
	c.SetAspect(math.NaN())
	if c.Aspect() != 2 {
		t.Errorf("expected aspect 2, got %v", c.Aspect())
	}
}

func TestOrthographicZoomScalesProjection(t *testing.T) {
	c := NewOrthographicCamera(WithFrustum(-1, 1, 1, -1))
	if c.Kind() != ProjectionOrthographic {
		t.Fatalf("expected orthographic, got %s", c.Kind())
	}
	base := c.ProjectionMatrix()[0]

	c.SetZoom(2)
	c.UpdateProjectionMatrix()
	if got := c.ProjectionMatrix()[0]; math.Abs(got-2*base) > eps {
		t.Errorf("expected x scale %v, got %v", 2*base, got)
	}

	l, r, top, b := c.Frustum()
	if l != -1 || r != 1 || top != 1 || b != -1 {
		t.Errorf("zoom must not change the frustum rectangle, got %v %v %v %v", l, r, top, b)
	}
}

func TestUniformMarshal(t *testing.T) {
	c := NewOrthographicCamera(WithPosition(1, 2, 3), WithZoom(4))
	u := c.Uniform()
	if u.Size() != 80 {
		t.Fatalf("expected 80 bytes, got %d", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("expected 80 byte buffer, got %d", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])); got != 2 {
		t.Errorf("expected position y 2, got %v", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[76:])); got != 4 {
		t.Errorf("expected zoom 4, got %v", got)
	}

	p := NewPerspectiveCamera().Uniform()
	if p.Zoom != 1 {
		t.Errorf("expected perspective zoom 1, got %v", p.Zoom)
	}
}

func TestProjectionKindString(t *testing.T) {
	tests := []struct {
		kind ProjectionKind
		want string
	}{
		{ProjectionPerspective, "perspective"},
		{ProjectionOrthographic, "orthographic"},
		{ProjectionUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
