// Package picking provides ray casting and bounding-box utilities on top of
// the generic math types.
package picking

import (
	"github.com/Faultbox/glmath/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray[T math.Scalar] struct {
	Origin    math.Vec3[T]
	Direction math.Vec3[T] // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray[T]) At(t T) math.Vec3[T] {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screen is in pixels with the origin at the top-left, viewport holds the
// viewport width and height, and invViewProj is the inverse of the
// view-projection matrix.
func ScreenToRay[T math.Scalar](screen, viewport math.Vec2[T], invViewProj math.Mat4[T]) Ray[T] {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screen.X/viewport.X - 1
	ndcY := 1 - 2*screen.Y/viewport.Y // Flip Y

	// Unproject near and far points; TransformPoint does the perspective divide
	near := invViewProj.TransformPoint(math.Vec3[T]{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformPoint(math.Vec3[T]{X: ndcX, Y: ndcY, Z: 1})

	return Ray[T]{Origin: near, Direction: far.Sub(near).Normalized()}
}

// InverseViewProj returns (proj * view)⁻¹ for use with ScreenToRay.
func InverseViewProj[T math.Scalar](view, proj math.Mat4[T]) (math.Mat4[T], error) {
	m := proj.Mul(view)
	err := m.TryInvert()
	return m, err
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// It reports false when the ray is parallel to the plane or the plane lies
// behind the origin.
func (r Ray[T]) IntersectPlaneY(planeY T) (math.Vec3[T], bool) {
	tiny := T(1) / 10 / 10 / 10
	if r.Direction.Y == 0 || math.Abs(r.Direction.Y) < tiny {
		return math.Vec3[T]{}, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3[T]{}, false // Intersection behind ray origin
	}

	p := r.At(t)
	p.Y = planeY
	return p, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box
// using the slab method. It returns the distance to the entry point, or to
// the exit point if the ray starts inside the box. A ray with a zero
// direction hits only when its origin lies inside the box.
func (r Ray[T]) IntersectAABB(box AABB[T]) (t T, hit bool) {
	o, d := components(r.Origin), components(r.Direction)
	lo, hi := components(box.Min), components(box.Max)

	var tmin, tmax T
	bounded := false
	for i := range 3 {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}

		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if !bounded {
			tmin, tmax, bounded = t1, t2, true
			continue
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if !bounded {
		return 0, true
	}
	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

func components[T math.Scalar](v math.Vec3[T]) [3]T {
	return [3]T{v.X, v.Y, v.Z}
}
