package math

import (
	"fmt"

	"go.uber.org/zap"
)

// Mat2 is a column-major 2x2 matrix: m[c][r] is row r, column c.
type Mat2[T Scalar] [2][2]T

// Mat2f is a float32 Mat2.
type Mat2f = Mat2[float32]

// Mat2d is a float64 Mat2.
type Mat2d = Mat2[float64]

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity[T Scalar]() Mat2[T] {
	return Mat2[T]{
		{1, 0},
		{0, 1},
	}
}

// Mat2FromAxes builds a matrix whose columns are x and y.
func Mat2FromAxes[T Scalar](x, y Vec2[T]) Mat2[T] {
	return Mat2[T]{
		{x.X, x.Y},
		{y.X, y.Y},
	}
}

// Add returns m + other.
func (m Mat2[T]) Add(other Mat2[T]) Mat2[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] += other[c][r]
		}
	}
	return m
}

// Sub returns m - other.
func (m Mat2[T]) Sub(other Mat2[T]) Mat2[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] -= other[c][r]
		}
	}
	return m
}

// Neg returns -m.
func (m Mat2[T]) Neg() Mat2[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] = -m[c][r]
		}
	}
	return m
}

// AddIn sets m to m + other.
func (m *Mat2[T]) AddIn(other Mat2[T]) { *m = m.Add(other) }

// SubIn sets m to m - other.
func (m *Mat2[T]) SubIn(other Mat2[T]) { *m = m.Sub(other) }

// Mul returns m * other.
func (m Mat2[T]) Mul(other Mat2[T]) Mat2[T] {
	var result Mat2[T]
	for c := range result {
		for r := range result[c] {
			result[c][r] = m[0][r]*other[c][0] + m[1][r]*other[c][1]
		}
	}
	return result
}

// MulIn sets m to m * other.
func (m *Mat2[T]) MulIn(other Mat2[T]) { *m = m.Mul(other) }

// MulVec transforms v, treated as a column vector.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0][0]*v.X + m[1][0]*v.Y,
		m[0][1]*v.X + m[1][1]*v.Y,
	}
}

// Transpose transposes m in place.
func (m *Mat2[T]) Transpose() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
}

// Transposed returns the transpose of m.
func (m Mat2[T]) Transposed() Mat2[T] {
	m.Transpose()
	return m
}

// Det returns the determinant.
func (m Mat2[T]) Det() T {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Invert inverts m in place. A singular m is left unchanged.
func (m *Mat2[T]) Invert() {
	det := m.Det()
	if det == 0 {
		diag().Debug("singular matrix left unchanged", zap.String("type", "Mat2"))
		return
	}
	inv := 1 / det
	*m = Mat2[T]{
		{m[1][1] * inv, -m[0][1] * inv},
		{-m[1][0] * inv, m[0][0] * inv},
	}
}

// Inverse returns the inverse of m, or m itself if it is singular.
func (m Mat2[T]) Inverse() Mat2[T] {
	m.Invert()
	return m
}

// TryInvert inverts m in place, returning ErrSingularMatrix and leaving m
// unchanged if the determinant is zero.
func (m *Mat2[T]) TryInvert() error {
	if m.Det() == 0 {
		return fmt.Errorf("invert Mat2: %w", ErrSingularMatrix)
	}
	m.Invert()
	return nil
}

// ApproxEqual reports whether every entry of m is within eps of other.
// A non-positive eps selects the package default.
func (m Mat2[T]) ApproxEqual(other Mat2[T], eps T) bool {
	eps = tolerance(eps)
	for c := range m {
		for r := range m[c] {
			if !within(m[c][r], other[c][r], eps) {
				return false
			}
		}
	}
	return true
}

func (m Mat2[T]) String() string {
	return fmt.Sprintf("[%v, %v]\n[%v, %v]",
		m[0][0], m[1][0],
		m[0][1], m[1][1])
}
