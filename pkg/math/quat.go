package math

import (
	"fmt"

	"go.uber.org/zap"
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
// Unit length is not enforced; rotations expect normalized values.
type Quat[T Scalar] struct {
	X, Y, Z, W T
}

// Quatf is a float32 Quat.
type Quatf = Quat[float32]

// Quatd is a float64 Quat.
type Quatd = Quat[float64]

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity[T Scalar]() Quat[T] {
	return Quat[T]{X: 0, Y: 0, Z: 0, W: 1}
}

// Add returns q + other.
func (q Quat[T]) Add(other Quat[T]) Quat[T] {
	return Quat[T]{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns q - other.
func (q Quat[T]) Sub(other Quat[T]) Quat[T] {
	return Quat[T]{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// Neg returns -q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Scale returns q * s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Div returns q / s.
func (q Quat[T]) Div(s T) Quat[T] {
	return Quat[T]{q.X / s, q.Y / s, q.Z / s, q.W / s}
}

// Dot returns the dot product of two quaternions.
func (q Quat[T]) Dot(other Quat[T]) T {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSq returns the squared norm.
func (q Quat[T]) LengthSq() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the norm.
func (q Quat[T]) Length() T {
	return Sqrt(q.LengthSq())
}

// Normalize scales q to unit length. A zero quaternion is left as is.
func (q *Quat[T]) Normalize() {
	l := q.Length()
	if l == 0 {
		diag().Debug("zero-length normalize skipped", zap.String("type", "Quat"))
		return
	}
	*q = q.Div(l)
}

// Normalized returns a normalized quaternion.
func (q Quat[T]) Normalized() Quat[T] {
	q.Normalize()
	return q
}

// TryNormalize is Normalize reporting ErrZeroLength instead of skipping.
func (q *Quat[T]) TryNormalize() error {
	if q.Length() == 0 {
		return fmt.Errorf("normalize Quat: %w", ErrZeroLength)
	}
	q.Normalize()
	return nil
}

// Mul multiplies two quaternions (combines rotations, other first).
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulIn sets q to q * other.
func (q *Quat[T]) MulIn(other Quat[T]) { *q = q.Mul(other) }

// Conjugate returns q with its vector part negated.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Invert replaces q by the inverse rotation: q is normalized and then
// conjugated.
func (q *Quat[T]) Invert() {
	q.Normalize()
	*q = q.Conjugate()
}

// Inverted returns the inverse rotation of q.
func (q Quat[T]) Inverted() Quat[T] {
	q.Invert()
	return q
}

// Slerp blends a towards b by t, flipping b when the two lie in opposite
// hemispheres so the shorter arc is taken. The blend is linear in the
// components and renormalized, not angle-uniform.
func Slerp[T Scalar](a, b Quat[T], t T) Quat[T] {
	if a.Dot(b) < 0 {
		b = b.Neg()
	}
	r := a.Scale(1 - t).Add(b.Scale(t))
	r.Normalize()
	return r
}

// Lerp performs linear interpolation between two quaternions without the
// shortest-path flip. Use Slerp for rotation interpolation; this is for
// simple blending.
func (q Quat[T]) Lerp(other Quat[T], t T) Quat[T] {
	return Quat[T]{
		X: q.X + t*(other.X-q.X),
		Y: q.Y + t*(other.Y-q.Y),
		Z: q.Z + t*(other.Z-q.Z),
		W: q.W + t*(other.W-q.W),
	}.Normalized()
}

// RotateVec3 rotates v by q through q's rotation matrix.
func (q Quat[T]) RotateVec3(v Vec3[T]) Vec3[T] {
	return q.ToMat4().TransformDirection(v)
}

// Forward returns -Z rotated by q.
func (q Quat[T]) Forward() Vec3[T] {
	return q.RotateVec3(Vec3[T]{Z: -1})
}

// Up returns +Y rotated by q.
func (q Quat[T]) Up() Vec3[T] {
	return q.RotateVec3(Vec3Y[T]())
}

// Right returns +X rotated by q.
func (q Quat[T]) Right() Vec3[T] {
	return q.RotateVec3(Vec3X[T]())
}

// ApproxEqual reports whether every component of q is within eps of other.
// q and -q describe the same rotation but are not approximately equal here.
func (q Quat[T]) ApproxEqual(other Quat[T], eps T) bool {
	eps = tolerance(eps)
	return within(q.X, other.X, eps) && within(q.Y, other.Y, eps) &&
		within(q.Z, other.Z, eps) && within(q.W, other.W, eps)
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", q.X, q.Y, q.Z, q.W)
}
