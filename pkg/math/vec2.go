package math

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// Vec2 is a 2D vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// Vec2f is a float32 Vec2.
type Vec2f = Vec2[float32]

// Vec2d is a float64 Vec2.
type Vec2d = Vec2[float64]

// Vec2X returns the unit X axis.
func Vec2X[T Scalar]() Vec2[T] { return Vec2[T]{X: 1} }

// Vec2Y returns the unit Y axis.
func Vec2Y[T Scalar]() Vec2[T] { return Vec2[T]{Y: 1} }

// Add returns v + other.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Scale returns v * scalar.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// Div returns v / scalar.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{v.X / s, v.Y / s}
}

// AddIn sets v to v + other.
func (v *Vec2[T]) AddIn(other Vec2[T]) { *v = v.Add(other) }

// SubIn sets v to v - other.
func (v *Vec2[T]) SubIn(other Vec2[T]) { *v = v.Sub(other) }

// ScaleIn sets v to v * s.
func (v *Vec2[T]) ScaleIn(s T) { *v = v.Scale(s) }

// DivIn sets v to v / s.
func (v *Vec2[T]) DivIn(s T) { *v = v.Div(s) }

// Dot returns the dot product.
func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSq returns the squared magnitude.
func (v Vec2[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2[T]) Length() T {
	return Sqrt(v.LengthSq())
}

// Normalize scales v to unit length. The zero vector is left as is.
func (v *Vec2[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		diag().Debug("zero-length normalize skipped", zap.String("type", "Vec2"))
		return
	}
	v.DivIn(l)
}

// Normalized returns a unit vector, or the zero vector if v has no length.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

// TryNormalize is Normalize reporting ErrZeroLength instead of skipping.
func (v *Vec2[T]) TryNormalize() error {
	if v.Length() == 0 {
		return ErrZeroLength
	}
	v.Normalize()
	return nil
}

// AngleBetween returns the angle in radians between v and other.
// Neither vector may have zero length.
func (v Vec2[T]) AngleBetween(other Vec2[T]) T {
	return Acos(v.Dot(other) / (v.Length() * other.Length()))
}

// Distance returns the distance to another point.
func (v Vec2[T]) Distance(other Vec2[T]) T {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v to other.
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// Equal reports whether v and other have the same length.
// Direction is not compared; use == for component equality.
func (v Vec2[T]) Equal(other Vec2[T]) bool {
	return v.Length() == other.Length()
}

// Compare orders v and other by length.
func (v Vec2[T]) Compare(other Vec2[T]) int {
	return cmp.Compare(v.Length(), other.Length())
}

// ApproxEqual reports whether every component of v is within eps of other.
// A non-positive eps selects the package default (see Epsilon).
func (v Vec2[T]) ApproxEqual(other Vec2[T], eps T) bool {
	eps = tolerance(eps)
	return within(v.X, other.X, eps) && within(v.Y, other.Y, eps)
}

// Vec3 extends v with z.
func (v Vec2[T]) Vec3(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
