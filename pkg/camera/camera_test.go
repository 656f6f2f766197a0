package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/glmath/pkg/math"
)

func TestOrbitPosition(t *testing.T) {
	tests := []struct {
		pitch, yaw float64
	}{
		{0.5, 0},
		{0.1, 1.2},
		{1.4, -2.5},
	}
	for _, tt := range tests {
		c := NewOrbit[float64]()
		c.Center = math.Vec3d{X: 10, Y: -3, Z: 7}
		c.Pitch, c.Yaw = tt.pitch, tt.yaw

		// Spherical coordinates around the center
		want := math.Vec3d{
			X: 10 + c.Distance*gomath.Cos(tt.pitch)*gomath.Sin(tt.yaw),
			Y: -3 + c.Distance*gomath.Sin(tt.pitch),
			Z: 7 + c.Distance*gomath.Cos(tt.pitch)*gomath.Cos(tt.yaw),
		}
		if got := c.Position(); !got.ApproxEqual(want, 1e-9) {
			t.Errorf("Position(pitch=%v, yaw=%v) = %v, want %v", tt.pitch, tt.yaw, got, want)
		}
	}
}

func TestOrbitViewMatrix(t *testing.T) {
	c := NewOrbit[float64]()
	c.Center = math.Vec3d{X: 1, Y: 2, Z: 3}
	c.Yaw = 0.8

	view := c.ViewMatrix()
	if got := view.TransformPoint(c.Center); !got.ApproxEqual(math.Vec3d{Z: -c.Distance}, 1e-9) {
		t.Errorf("center in view space = %v, want [0, 0, %v]", got, -c.Distance)
	}

	// The view matrix is the inverse of the camera's rigid transform.
	pos := c.Position()
	fromQuat := c.Orientation().Inverted().ToMat4().Mul(math.Translate(pos.Neg()))
	if !fromQuat.ApproxEqual(view, 1e-9) {
		t.Errorf("orientation-based view =\n%v\nwant\n%v", fromQuat, view)
	}
}

func TestOrbitHandleDrag(t *testing.T) {
	c := NewOrbit[float64]()
	c.HandleDrag(100, 0)
	if want := -100 * c.DragSensitivity; c.Yaw != want {
		t.Errorf("Yaw = %v, want %v", c.Yaw, want)
	}

	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, c.MinPitch)
	}
}

func TestOrbitHandleZoom(t *testing.T) {
	c := NewOrbit[float64]()
	c.HandleZoom(1)
	if c.Distance != 180 {
		t.Errorf("Distance after zoom = %v, want 180", c.Distance)
	}

	c.HandleZoom(100)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}
	c.HandleZoom(-1e6)
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestOrbitHandleMovement(t *testing.T) {
	c := NewOrbit[float64]()
	c.HandleMovement(1, 0, 0)
	// Default yaw looks down -Z; speed is Distance/100.
	if !c.Center.ApproxEqual(math.Vec3d{Z: -2}, 1e-12) {
		t.Errorf("Center after forward = %v, want [0, 0, -2]", c.Center)
	}

	c.Center = math.Vec3d{}
	c.Yaw = gomath.Pi / 2
	c.HandleMovement(0, 1, 1)
	if !c.Center.ApproxEqual(math.Vec3d{Y: 2, Z: -2}, 1e-12) {
		t.Errorf("Center after right+up = %v, want [0, 2, -2]", c.Center)
	}
}

func TestOrbitFitToBounds(t *testing.T) {
	c := NewOrbit[float64]()
	c.Yaw = 3
	c.FitToBounds(math.Vec3d{}, math.Vec3d{X: 1000, Y: 50, Z: 2000})

	if c.Center != (math.Vec3d{X: 500, Y: 25, Z: 1000}) {
		t.Errorf("Center = %v", c.Center)
	}
	if c.Distance != 600 {
		t.Errorf("Distance = %v, want 600", c.Distance)
	}
	if c.Yaw != 0 || c.Pitch != 0.6 {
		t.Errorf("orientation = (%v, %v), want (0.6, 0)", c.Pitch, c.Yaw)
	}

	c.FitToBounds(math.Vec3d{}, math.Vec3d{X: 10, Y: 10, Z: 10})
	if c.Distance != 200 {
		t.Errorf("small bounds distance = %v, want 200", c.Distance)
	}
}

func TestThirdPersonPosition(t *testing.T) {
	c := NewThirdPerson[float64]()
	c.Pitch = 0

	if got := c.Position(math.Vec3d{}); !got.ApproxEqual(math.Vec3d{Z: -300}, 1e-9) {
		t.Errorf("Position = %v, want [0, 0, -300]", got)
	}

	c.Pitch = gomath.Pi / 6
	c.Yaw = gomath.Pi / 2
	target := math.Vec3d{X: 5, Y: 1, Z: 5}
	want := math.Vec3d{X: 5 - 300*gomath.Cos(gomath.Pi/6), Y: 1 + 150, Z: 5}
	if got := c.Position(target); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestThirdPersonViewMatrix(t *testing.T) {
	c := NewThirdPerson[float64]()
	target := math.Vec3d{X: 40, Z: -20}

	focus := target.Add(math.Vec3d{Y: c.LookHeight})
	p := c.ViewMatrix(target).TransformPoint(focus)
	if gomath.Abs(p.X) > 1e-9 || gomath.Abs(p.Y) > 1e-9 || p.Z >= 0 {
		t.Errorf("focus in view space = %v, want on -Z axis", p)
	}
}

func TestThirdPersonControls(t *testing.T) {
	c := NewThirdPerson[float64]()
	c.HandleYaw(-100)
	if want := 100 * c.YawSensitivity; c.Yaw != want {
		t.Errorf("Yaw = %v, want %v", c.Yaw, want)
	}

	c.HandleZoom(1e6)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	f, r := c.ForwardDirection(), c.RightDirection()
	if d := f.Dot(r); gomath.Abs(d) > 1e-12 {
		t.Errorf("forward · right = %v, want 0", d)
	}
	if l := f.Length(); gomath.Abs(l-1) > 1e-12 {
		t.Errorf("|forward| = %v, want 1", l)
	}
}

func TestIntegerCamera(t *testing.T) {
	c := NewOrbit[int]()
	if c.Distance != 200 || c.Pitch != 0 {
		t.Errorf("integer defaults = (%v, %v)", c.Distance, c.Pitch)
	}

	c.FitToBounds(math.Vec3[int]{}, math.Vec3[int]{X: 1001, Y: 50, Z: 2000})
	if c.Center != (math.Vec3[int]{X: 500, Y: 25, Z: 1000}) {
		t.Errorf("Center = %v, want [500, 25, 1000]", c.Center)
	}
	if c.Distance != 600 {
		t.Errorf("Distance = %v, want 600", c.Distance)
	}

	tp := NewThirdPerson[int16]()
	if tp.Distance != 300 || tp.MinDistance != 100 || tp.MaxDistance != 800 {
		t.Errorf("int16 distances = (%v, %v, %v)", tp.Distance, tp.MinDistance, tp.MaxDistance)
	}

	// Narrow types still instantiate; the defaults simply wrap.
	if o := NewOrbit[int8](); o.MinDistance != 50 {
		t.Errorf("int8 MinDistance = %v, want 50", o.MinDistance)
	}
}
