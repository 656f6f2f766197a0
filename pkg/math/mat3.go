package math

import (
	"fmt"

	"go.uber.org/zap"
)

// Mat3 is a column-major 3x3 matrix: m[c][r] is row r, column c.
type Mat3[T Scalar] [3][3]T

// Mat3f is a float32 Mat3.
type Mat3f = Mat3[float32]

// Mat3d is a float64 Mat3.
type Mat3d = Mat3[float64]

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Scalar]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mat3FromAxes builds a matrix whose columns are x, y and z.
func Mat3FromAxes[T Scalar](x, y, z Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{x.X, x.Y, x.Z},
		{y.X, y.Y, y.Z},
		{z.X, z.Y, z.Z},
	}
}

// Add returns m + other.
func (m Mat3[T]) Add(other Mat3[T]) Mat3[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] += other[c][r]
		}
	}
	return m
}

// Sub returns m - other.
func (m Mat3[T]) Sub(other Mat3[T]) Mat3[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] -= other[c][r]
		}
	}
	return m
}

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] = -m[c][r]
		}
	}
	return m
}

// AddIn sets m to m + other.
func (m *Mat3[T]) AddIn(other Mat3[T]) { *m = m.Add(other) }

// SubIn sets m to m - other.
func (m *Mat3[T]) SubIn(other Mat3[T]) { *m = m.Sub(other) }

// Mul returns m * other.
func (m Mat3[T]) Mul(other Mat3[T]) Mat3[T] {
	var result Mat3[T]
	for c := range result {
		for r := range result[c] {
			result[c][r] = m[0][r]*other[c][0] +
				m[1][r]*other[c][1] +
				m[2][r]*other[c][2]
		}
	}
	return result
}

// MulIn sets m to m * other.
func (m *Mat3[T]) MulIn(other Mat3[T]) { *m = m.Mul(other) }

// MulVec transforms v, treated as a column vector.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose transposes m in place.
func (m *Mat3[T]) Transpose() {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
}

// Transposed returns the transpose of m.
func (m Mat3[T]) Transposed() Mat3[T] {
	m.Transpose()
	return m
}

// Det returns the determinant.
func (m Mat3[T]) Det() T {
	return det33(
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// det33 is the determinant of the 3x3 matrix with rows (t00, t01, t02),
// (t10, t11, t12) and (t20, t21, t22). The determinant of a transpose is
// the same, so the argument order may also be read as columns.
func det33[T Scalar](t00, t01, t02, t10, t11, t12, t20, t21, t22 T) T {
	return t00*(t11*t22-t12*t21) +
		t01*(t12*t20-t10*t22) +
		t02*(t10*t21-t11*t20)
}

// Invert inverts m in place. A singular m is left unchanged.
func (m *Mat3[T]) Invert() {
	det := m.Det()
	if det == 0 {
		diag().Debug("singular matrix left unchanged", zap.String("type", "Mat3"))
		return
	}
	inv := 1 / det

	// Cofactors of m[i][j].
	t00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	t01 := -m[1][0]*m[2][2] + m[1][2]*m[2][0]
	t02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	t10 := -m[0][1]*m[2][2] + m[0][2]*m[2][1]
	t11 := m[0][0]*m[2][2] - m[0][2]*m[2][0]
	t12 := -m[0][0]*m[2][1] + m[0][1]*m[2][0]
	t20 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	t21 := -m[0][0]*m[1][2] + m[0][2]*m[1][0]
	t22 := m[0][0]*m[1][1] - m[0][1]*m[1][0]

	// Adjugate: transposed cofactors.
	*m = Mat3[T]{
		{t00 * inv, t10 * inv, t20 * inv},
		{t01 * inv, t11 * inv, t21 * inv},
		{t02 * inv, t12 * inv, t22 * inv},
	}
}

// Inverse returns the inverse of m, or m itself if it is singular.
func (m Mat3[T]) Inverse() Mat3[T] {
	m.Invert()
	return m
}

// TryInvert inverts m in place, returning ErrSingularMatrix and leaving m
// unchanged if the determinant is zero.
func (m *Mat3[T]) TryInvert() error {
	if m.Det() == 0 {
		return fmt.Errorf("invert Mat3: %w", ErrSingularMatrix)
	}
	m.Invert()
	return nil
}

// Mat4 embeds m in the upper-left block of an identity Mat4.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// ApproxEqual reports whether every entry of m is within eps of other.
// A non-positive eps selects the package default.
func (m Mat3[T]) ApproxEqual(other Mat3[T], eps T) bool {
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

func (m Mat3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]\n[%v, %v, %v]\n[%v, %v, %v]",
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2])
}
