package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/glmath/pkg/math"
)

func TestScreenToRay(t *testing.T) {
	view := math.LookAt(math.Vec3d{Z: 5}, math.Vec3d{}, math.Vec3Y[float64]())
	proj := math.Perspective(gomath.Pi/2, 800.0/600.0, 1, 100)
	inv, err := InverseViewProj(view, proj)
	if err != nil {
		t.Fatalf("InverseViewProj: %v", err)
	}

	viewport := math.Vec2d{X: 800, Y: 600}
	r := ScreenToRay(math.Vec2d{X: 400, Y: 300}, viewport, inv)
	if !r.Origin.ApproxEqual(math.Vec3d{Z: 4}, 1e-9) {
		t.Errorf("center ray origin = %v, want [0, 0, 4]", r.Origin)
	}
	if !r.Direction.ApproxEqual(math.Vec3d{Z: -1}, 1e-9) {
		t.Errorf("center ray direction = %v, want [0, 0, -1]", r.Direction)
	}

	// Top edge of the screen points up at half the vertical field of view.
	top := ScreenToRay(math.Vec2d{X: 400, Y: 0}, viewport, inv)
	want := math.Vec3d{Y: 1, Z: -1}.Normalized()
	if !top.Direction.ApproxEqual(want, 1e-9) {
		t.Errorf("top ray direction = %v, want %v", top.Direction, want)
	}
}

func TestInverseViewProjSingular(t *testing.T) {
	if _, err := InverseViewProj(math.Mat4d{}, math.Mat4Identity[float64]()); err == nil {
		t.Error("expected error for singular view-projection")
	}
}

func TestIntersectPlaneY(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray[float64]
		planeY float64
		want   math.Vec3d
		ok     bool
	}{
		{
			name:   "straight down",
			ray:    Ray[float64]{Origin: math.Vec3d{X: 3, Y: 10, Z: 4}, Direction: math.Vec3d{Y: -1}},
			planeY: 0,
			want:   math.Vec3d{X: 3, Z: 4},
			ok:     true,
		},
		{
			name:   "diagonal",
			ray:    Ray[float64]{Origin: math.Vec3d{Y: 2}, Direction: math.Vec3d{X: 1, Y: -1}.Normalized()},
			planeY: 0,
			want:   math.Vec3d{X: 2},
			ok:     true,
		},
		{
			name:   "parallel",
			ray:    Ray[float64]{Origin: math.Vec3d{Y: 2}, Direction: math.Vec3d{X: 1}},
			planeY: 0,
			ok:     false,
		},
		{
			name:   "behind",
			ray:    Ray[float64]{Origin: math.Vec3d{Y: 2}, Direction: math.Vec3d{Y: 1}},
			planeY: 0,
			ok:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectPlaneY(tt.planeY)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(math.Vec3d{}, math.Vec3d{X: 1, Y: 1, Z: 1})

	tests := []struct {
		name  string
		ray   Ray[float64]
		wantT float64
		hit   bool
	}{
		{"axis hit", Ray[float64]{Origin: math.Vec3d{X: -5, Y: 0.5, Z: 0.5}, Direction: math.Vec3X[float64]()}, 5, true},
		{"axis miss", Ray[float64]{Origin: math.Vec3d{X: -5, Y: 2, Z: 0.5}, Direction: math.Vec3X[float64]()}, 0, false},
		{"pointing away", Ray[float64]{Origin: math.Vec3d{X: -5, Y: 0.5, Z: 0.5}, Direction: math.Vec3X[float64]().Neg()}, 0, false},
		{"inside", Ray[float64]{Origin: math.Vec3d{X: 0.5, Y: 0.5, Z: 0.5}, Direction: math.Vec3Y[float64]()}, 0.5, true},
		{"diagonal", Ray[float64]{Origin: math.Vec3d{X: -1, Y: -1, Z: -1}, Direction: math.Vec3d{X: 1, Y: 1, Z: 1}.Normalized()}, gomath.Sqrt(3), true},
		{"degenerate inside", Ray[float64]{Origin: math.Vec3d{X: 0.5, Y: 0.5, Z: 0.5}}, 0, true},
		{"degenerate outside", Ray[float64]{Origin: math.Vec3d{X: 5}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if gomath.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(math.Vec3d{X: 4, Y: -1, Z: 3}, math.Vec3d{X: -2, Y: 5, Z: 3})
	if b.Min != (math.Vec3d{X: -2, Y: -1, Z: 3}) || b.Max != (math.Vec3d{X: 4, Y: 5, Z: 3}) {
		t.Errorf("NewAABB = %+v", b)
	}
}

func TestAABBCenterRadius(t *testing.T) {
	b := NewAABB(math.Vec3d{X: -1, Y: -1, Z: -1}, math.Vec3d{X: 1, Y: 1, Z: 1})
	if c := b.Center(); c != (math.Vec3d{}) {
		t.Errorf("Center = %v, want origin", c)
	}
	if r := b.Radius(); gomath.Abs(r-gomath.Sqrt(3)) > 1e-12 {
		t.Errorf("Radius = %v, want √3", r)
	}
	if !b.Contains(math.Vec3d{X: 1, Y: 0, Z: -1}) || b.Contains(math.Vec3d{X: 1.5}) {
		t.Error("Contains incorrect")
	}
}

func TestAABBCorners(t *testing.T) {
	b := NewAABB(math.Vec3d{}, math.Vec3d{X: 1, Y: 2, Z: 3})
	seen := map[math.Vec3d]bool{}
	for _, c := range b.Corners() {
		if !b.Contains(c) {
			t.Errorf("corner %v outside box", c)
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct corners, want 8", len(seen))
	}
}

func TestAABBTransformed(t *testing.T) {
	b := NewAABB(math.Vec3d{}, math.Vec3d{X: 1, Y: 2, Z: 3})
	got := b.Transformed(math.RotateY(gomath.Pi / 2))

	// +X turns into -Z and +Z into +X.
	if !got.Min.ApproxEqual(math.Vec3d{X: 0, Y: 0, Z: -1}, 1e-12) ||
		!got.Max.ApproxEqual(math.Vec3d{X: 3, Y: 2, Z: 0}, 1e-12) {
		t.Errorf("Transformed = %+v", got)
	}
}

func TestAABBPlaced(t *testing.T) {
	local := NewAABB(math.Vec3d{}, math.Vec3d{X: 1, Y: 1, Z: 1})
	got := local.Placed(math.Vec3d{X: 10}, math.Vec3d{X: -2, Y: 1, Z: 1})
	if got.Min != (math.Vec3d{X: 8}) || got.Max != (math.Vec3d{X: 10, Y: 1, Z: 1}) {
		t.Errorf("Placed = %+v", got)
	}
}

func TestIntegerAABB(t *testing.T) {
	b := NewAABB(math.Vec3[int]{}, math.Vec3[int]{X: 10, Y: 20, Z: 30})

	if c := b.Center(); c != (math.Vec3[int]{X: 5, Y: 10, Z: 15}) {
		t.Errorf("Center = %v, want [5, 10, 15]", c)
	}
	// √350 truncates to 18
	if r := b.Radius(); r != 18 {
		t.Errorf("Radius = %v, want 18", r)
	}
}

func TestIntegerRayPlane(t *testing.T) {
	flat := Ray[int8]{Origin: math.Vec3[int8]{Y: 10}}
	if _, ok := flat.IntersectPlaneY(0); ok {
		t.Error("zero direction should not hit the plane")
	}

	down := Ray[int8]{Origin: math.Vec3[int8]{X: 3, Y: 10}, Direction: math.Vec3[int8]{Y: -1}}
	p, ok := down.IntersectPlaneY(0)
	if !ok || p != (math.Vec3[int8]{X: 3}) {
		t.Errorf("IntersectPlaneY = (%v, %v), want ([3, 0, 0], true)", p, ok)
	}
}
