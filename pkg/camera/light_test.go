package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/glmath/pkg/math"
	"github.com/Faultbox/glmath/pkg/picking"
)

func insideNDC(p math.Vec3d) bool {
	const limit = 1 + 1e-9
	return gomath.Abs(p.X) <= limit && gomath.Abs(p.Y) <= limit && gomath.Abs(p.Z) <= limit
}

func TestDirectionalLightMatrixCoversScene(t *testing.T) {
	scene := picking.NewAABB(math.Vec3d{X: -100, Y: 0, Z: -50}, math.Vec3d{X: 300, Y: 80, Z: 250})

	tests := []struct {
		name string
		dir  math.Vec3d
	}{
		{"oblique", math.Vec3d{X: 1, Y: 2, Z: 0.5}.Normalized()},
		{"overhead", math.Vec3Y[float64]()},
		{"low", math.Vec3d{X: -1, Y: 0.1, Z: 0}.Normalized()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DirectionalLightMatrix(tt.dir, scene)
			for _, c := range scene.Corners() {
				p := m.TransformPoint(c)
				if !insideNDC(p) {
					t.Errorf("corner %v maps to %v, outside clip volume", c, p)
				}
			}
		})
	}
}

func TestFollowLightMatrix(t *testing.T) {
	scene := picking.NewAABB(math.Vec3d{X: -1000, Y: -20, Z: -1000}, math.Vec3d{X: 1000, Y: 20, Z: 1000})
	cam := math.Vec3d{X: 120, Y: 300, Z: -40}
	dir := math.Vec3d{X: 0.3, Y: 1, Z: 0.2}.Normalized()

	m := FollowLightMatrix(dir, scene, cam, 200)

	focus := math.Vec3d{X: cam.X, Y: scene.Center().Y, Z: cam.Z}
	p := m.TransformPoint(focus)
	if gomath.Abs(p.X) > 1e-9 || gomath.Abs(p.Y) > 1e-9 {
		t.Errorf("focus maps to %v, want centered", p)
	}

	// Points within the shadow radius stay inside the clip volume.
	near := focus.Add(math.Vec3d{X: 150, Z: -150})
	if q := m.TransformPoint(near); !insideNDC(q) {
		t.Errorf("point inside shadow radius maps to %v", q)
	}
}
