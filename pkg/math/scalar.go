// Package math provides generic vector, matrix and quaternion types for
// 3D graphics and physics.
//
// Every type is parameterized over a Scalar. float32 and float64 are the
// intended instantiations; signed integers work but truncate the results of
// square roots and trigonometric functions.
//
// Matrices are column-major: m[c][r] is the entry at row r, column c.
package math

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types the package is generic over.
type Scalar interface {
	constraints.Float | constraints.Signed
}

// Zero returns 0 as T.
func Zero[T Scalar]() T { return 0 }

// One returns 1 as T.
func One[T Scalar]() T { return 1 }

// Two returns 2 as T.
func Two[T Scalar]() T { return 2 }

// Half returns 0.5 as T (0 for integer types).
func Half[T Scalar]() T {
	h := 0.5
	return T(h)
}

// Quarter returns 0.25 as T (0 for integer types).
func Quarter[T Scalar]() T {
	q := 0.25
	return T(q)
}

// Pi returns π as T (3 for integer types).
func Pi[T Scalar]() T {
	p := math.Pi
	return T(p)
}

// Sqrt returns the square root of x.
func Sqrt[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of x (radians).
func Tan[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(x)))
}

// Asin returns the arcsine of x. x outside [-1, 1] yields NaN for floats.
func Asin[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Asin(f))
	}
	return T(math.Asin(float64(x)))
}

// Acos returns the arccosine of x. x outside [-1, 1] yields NaN for floats.
func Acos[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(x)))
}

// Atan2 returns the arctangent of a/b, using the signs of both to pick the
// quadrant.
func Atan2[T Scalar](a, b T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Atan2(f, any(b).(float32)))
	}
	return T(math.Atan2(float64(a), float64(b)))
}

// Abs returns |x|.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}
