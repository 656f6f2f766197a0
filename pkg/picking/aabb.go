package picking

import (
	"github.com/Faultbox/glmath/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB[T math.Scalar] struct {
	Min math.Vec3[T]
	Max math.Vec3[T]
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB[T math.Scalar](a, b math.Vec3[T]) AABB[T] {
	return AABB[T]{
		Min: math.Vec3[T]{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: math.Vec3[T]{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// Center returns the center point of the box.
func (b AABB[T]) Center() math.Vec3[T] {
	return b.Min.Add(b.Max).Div(2)
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB[T]) Radius() T {
	return b.Max.Sub(b.Min).Div(2).Length()
}

// Contains reports whether p lies inside or on the box.
func (b AABB[T]) Contains(p math.Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns the eight corners of the box.
func (b AABB[T]) Corners() [8]math.Vec3[T] {
	var c [8]math.Vec3[T]
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Transformed returns the box enclosing b after transforming it by m.
func (b AABB[T]) Transformed(m math.Mat4[T]) AABB[T] {
	corners := b.Corners()
	first := m.TransformPoint(corners[0])
	out := AABB[T]{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := m.TransformPoint(c)
		out.Min = math.Vec3[T]{X: math.Min(out.Min.X, p.X), Y: math.Min(out.Min.Y, p.Y), Z: math.Min(out.Min.Z, p.Z)}
		out.Max = math.Vec3[T]{X: math.Max(out.Max.X, p.X), Y: math.Max(out.Max.Y, p.Y), Z: math.Max(out.Max.Z, p.Z)}
	}
	return out
}

// Placed moves a local box to world space by scaling it and then
// translating by position. Negative scales are handled.
func (b AABB[T]) Placed(position, scale math.Vec3[T]) AABB[T] {
	return b.Transformed(math.Translate(position).Mul(math.Scale(scale)))
}
