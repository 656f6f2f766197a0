package math

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// Vec4 is a 4-component vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// Vec4f is a float32 Vec4.
type Vec4f = Vec4[float32]

// Vec4d is a float64 Vec4.
type Vec4d = Vec4[float64]

// Vec4X returns the unit X axis.
func Vec4X[T Scalar]() Vec4[T] { return Vec4[T]{X: 1} }

// Vec4Y returns the unit Y axis.
func Vec4Y[T Scalar]() Vec4[T] { return Vec4[T]{Y: 1} }

// Vec4Z returns the unit Z axis.
func Vec4Z[T Scalar]() Vec4[T] { return Vec4[T]{Z: 1} }

// Vec4W returns the unit W axis.
func Vec4W[T Scalar]() Vec4[T] { return Vec4[T]{W: 1} }

// Add returns v + other.
func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v * scalar.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / scalar.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// AddIn sets v to v + other.
func (v *Vec4[T]) AddIn(other Vec4[T]) { *v = v.Add(other) }

// SubIn sets v to v - other.
func (v *Vec4[T]) SubIn(other Vec4[T]) { *v = v.Sub(other) }

// ScaleIn sets v to v * s.
func (v *Vec4[T]) ScaleIn(s T) { *v = v.Scale(s) }

// DivIn sets v to v / s.
func (v *Vec4[T]) DivIn(s T) { *v = v.Div(s) }

// Dot returns the dot product.
func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSq returns the squared magnitude.
func (v Vec4[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the magnitude.
func (v Vec4[T]) Length() T {
	return Sqrt(v.LengthSq())
}

// Normalize scales v to unit length. The zero vector is left as is.
func (v *Vec4[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		diag().Debug("zero-length normalize skipped", zap.String("type", "Vec4"))
		return
	}
	v.DivIn(l)
}

// Normalized returns a unit vector, or the zero vector if v has no length.
func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

// TryNormalize is Normalize reporting ErrZeroLength instead of skipping.
func (v *Vec4[T]) TryNormalize() error {
	if v.Length() == 0 {
		return ErrZeroLength
	}
	v.Normalize()
	return nil
}

// AngleBetween returns the angle in radians between v and other.
// Neither vector may have zero length.
func (v Vec4[T]) AngleBetween(other Vec4[T]) T {
	return Acos(v.Dot(other) / (v.Length() * other.Length()))
}

// Distance returns the distance to another point.
func (v Vec4[T]) Distance(other Vec4[T]) T {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v to other.
func (v Vec4[T]) Lerp(other Vec4[T], t T) Vec4[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// Equal reports whether v and other have the same length.
// Direction is not compared; use == for component equality.
func (v Vec4[T]) Equal(other Vec4[T]) bool {
	return v.Length() == other.Length()
}

// Compare orders v and other by length.
func (v Vec4[T]) Compare(other Vec4[T]) int {
	return cmp.Compare(v.Length(), other.Length())
}

// ApproxEqual reports whether every component of v is within eps of other.
// A non-positive eps selects the package default (see Epsilon).
func (v Vec4[T]) ApproxEqual(other Vec4[T], eps T) bool {
	eps = tolerance(eps)
	return within(v.X, other.X, eps) && within(v.Y, other.Y, eps) &&
		within(v.Z, other.Z, eps) && within(v.W, other.W, eps)
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", v.X, v.Y, v.Z, v.W)
}
