package math

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// Vec3 is a 3D vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vec3f is a float32 Vec3.
type Vec3f = Vec3[float32]

// Vec3d is a float64 Vec3.
type Vec3d = Vec3[float64]

// Vec3X returns the unit X axis.
func Vec3X[T Scalar]() Vec3[T] { return Vec3[T]{X: 1} }

// Vec3Y returns the unit Y axis.
func Vec3Y[T Scalar]() Vec3[T] { return Vec3[T]{Y: 1} }

// Vec3Z returns the unit Z axis.
func Vec3Z[T Scalar]() Vec3[T] { return Vec3[T]{Z: 1} }

// Add returns v + other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * scalar.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / scalar.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{v.X / s, v.Y / s, v.Z / s}
}

// AddIn sets v to v + other.
func (v *Vec3[T]) AddIn(other Vec3[T]) { *v = v.Add(other) }

// SubIn sets v to v - other.
func (v *Vec3[T]) SubIn(other Vec3[T]) { *v = v.Sub(other) }

// ScaleIn sets v to v * s.
func (v *Vec3[T]) ScaleIn(s T) { *v = v.Scale(s) }

// DivIn sets v to v / s.
func (v *Vec3[T]) DivIn(s T) { *v = v.Div(s) }

// Dot returns the dot product.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3[T]) Length() T {
	return Sqrt(v.LengthSq())
}

// Normalize scales v to unit length. The zero vector is left as is.
func (v *Vec3[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		diag().Debug("zero-length normalize skipped", zap.String("type", "Vec3"))
		return
	}
	v.DivIn(l)
}

// Normalized returns a unit vector, or the zero vector if v has no length.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// TryNormalize is Normalize reporting ErrZeroLength instead of skipping.
func (v *Vec3[T]) TryNormalize() error {
	if v.Length() == 0 {
		return ErrZeroLength
	}
	v.Normalize()
	return nil
}

// AngleBetween returns the angle in radians between v and other.
// Neither vector may have zero length.
func (v Vec3[T]) AngleBetween(other Vec3[T]) T {
	return Acos(v.Dot(other) / (v.Length() * other.Length()))
}

// Distance returns the distance to another point.
func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v to other.
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// Equal reports whether v and other have the same length.
// Direction is not compared; use == for component equality.
func (v Vec3[T]) Equal(other Vec3[T]) bool {
	return v.Length() == other.Length()
}

// Compare orders v and other by length.
func (v Vec3[T]) Compare(other Vec3[T]) int {
	return cmp.Compare(v.Length(), other.Length())
}

// ApproxEqual reports whether every component of v is within eps of other.
// A non-positive eps selects the package default (see Epsilon).
func (v Vec3[T]) ApproxEqual(other Vec3[T], eps T) bool {
	eps = tolerance(eps)
	return within(v.X, other.X, eps) && within(v.Y, other.Y, eps) && within(v.Z, other.Z, eps)
}

// XZ returns the XZ components as Vec2.
func (v Vec3[T]) XZ() Vec2[T] {
	return Vec2[T]{v.X, v.Z}
}

// Vec4 extends v with w.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}
