package math

import (
	"fmt"

	"go.uber.org/zap"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible):
// m[c][r] is row r, column c.
// Layout: [m[0][0] m[1][0] m[2][0] m[3][0]]
//
//	[m[0][1] m[1][1] m[2][1] m[3][1]]
//	[m[0][2] m[1][2] m[2][2] m[3][2]]
//	[m[0][3] m[1][3] m[2][3] m[3][3]]
type Mat4[T Scalar] [4][4]T

// Mat4f is a float32 Mat4.
type Mat4f = Mat4[float32]

// Mat4d is a float64 Mat4.
type Mat4d = Mat4[float64]

// Mat4Identity returns an identity matrix.
func Mat4Identity[T Scalar]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromAxes builds a matrix whose columns are x, y, z and w.
func Mat4FromAxes[T Scalar](x, y, z, w Vec4[T]) Mat4[T] {
	return Mat4[T]{
		{x.X, x.Y, x.Z, x.W},
		{y.X, y.Y, y.Z, y.W},
		{z.X, z.Y, z.Z, z.W},
		{w.X, w.Y, w.Z, w.W},
	}
}

// Add returns m + other.
func (m Mat4[T]) Add(other Mat4[T]) Mat4[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] += other[c][r]
		}
	}
	return m
}

// Sub returns m - other.
func (m Mat4[T]) Sub(other Mat4[T]) Mat4[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] -= other[c][r]
		}
	}
	return m
}

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] = -m[c][r]
		}
	}
	return m
}

// AddIn sets m to m + other.
func (m *Mat4[T]) AddIn(other Mat4[T]) { *m = m.Add(other) }

// SubIn sets m to m - other.
func (m *Mat4[T]) SubIn(other Mat4[T]) { *m = m.Sub(other) }

// Mul multiplies this matrix by another (m * other).
func (m Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	var result Mat4[T]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col][row] =
				m[0][row]*other[col][0] +
					m[1][row]*other[col][1] +
					m[2][row]*other[col][2] +
					m[3][row]*other[col][3]
		}
	}
	return result
}

// MulIn sets m to m * other.
func (m *Mat4[T]) MulIn(other Mat4[T]) { *m = m.Mul(other) }

// MulVec multiplies the matrix by a Vec4 treated as a column.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z + m[3][0]*v.W,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z + m[3][1]*v.W,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z + m[3][2]*v.W,
		m[0][3]*v.X + m[1][3]*v.Y + m[2][3]*v.Z + m[3][3]*v.W,
	}
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	v := m.MulVec(p.Vec4(1))
	if v.W != 0 && v.W != 1 {
		return Vec3[T]{v.X / v.W, v.Y / v.W, v.Z / v.W}
	}
	return v.XYZ()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4[T]) TransformDirection(d Vec3[T]) Vec3[T] {
	return m.MulVec(d.Vec4(0)).XYZ()
}

// Transpose transposes m in place.
func (m *Mat4[T]) Transpose() {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
}

// Transposed returns the transpose of m.
func (m Mat4[T]) Transposed() Mat4[T] {
	m.Transpose()
	return m
}

// cofactor returns the signed 3x3 minor of m with m[i][*] and m[*][j]
// removed.
func (m *Mat4[T]) cofactor(i, j int) T {
	var s [9]T
	n := 0
	for a := 0; a < 4; a++ {
		if a == i {
			continue
		}
		for b := 0; b < 4; b++ {
			if b == j {
				continue
			}
			s[n] = m[a][b]
			n++
		}
	}
	d := det33(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8])
	if (i+j)%2 == 1 {
		return -d
	}
	return d
}

// Det returns the determinant, expanded along the first column.
func (m Mat4[T]) Det() T {
	return m[0][0]*m.cofactor(0, 0) +
		m[0][1]*m.cofactor(0, 1) +
		m[0][2]*m.cofactor(0, 2) +
		m[0][3]*m.cofactor(0, 3)
}

// Invert inverts m in place. A singular m is left unchanged.
func (m *Mat4[T]) Invert() {
	det := m.Det()
	if det == 0 {
		diag().Debug("singular matrix left unchanged", zap.String("type", "Mat4"))
		return
	}
	inv := 1 / det

	var adj Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			adj[j][i] = m.cofactor(i, j) * inv
		}
	}
	*m = adj
}

// Inverse returns the inverse of the matrix.
// Returns m unchanged if the matrix is singular.
func (m Mat4[T]) Inverse() Mat4[T] {
	m.Invert()
	return m
}

// TryInvert inverts m in place, returning ErrSingularMatrix and leaving m
// unchanged if the determinant is zero.
func (m *Mat4[T]) TryInvert() error {
	if m.Det() == 0 {
		return fmt.Errorf("invert Mat4: %w", ErrSingularMatrix)
	}
	m.Invert()
	return nil
}

// Scale multiplies the first three columns by v.X, v.Y and v.Z.
func (m *Mat4[T]) Scale(v Vec3[T]) {
	for r := 0; r < 4; r++ {
		m[0][r] *= v.X
		m[1][r] *= v.Y
		m[2][r] *= v.Z
	}
}

// Scaled returns a copy of m scaled by v.
func (m Mat4[T]) Scaled(v Vec3[T]) Mat4[T] {
	m.Scale(v)
	return m
}

// Translate moves m by v expressed in m's own basis.
func (m *Mat4[T]) Translate(v Vec3[T]) {
	for r := 0; r < 4; r++ {
		m[3][r] += m[0][r]*v.X + m[1][r]*v.Y + m[2][r]*v.Z
	}
}

// Translated returns a copy of m translated by v.
func (m Mat4[T]) Translated(v Vec3[T]) Mat4[T] {
	m.Translate(v)
	return m
}

// Rotate post-multiplies the upper 3x3 block by a rotation of angle radians
// around axis. axis must be normalized. The fourth column is untouched.
func (m *Mat4[T]) Rotate(axis Vec3[T], angle T) {
	f := RotateAxis(axis, angle)

	var t [3][4]T
	for c := 0; c < 3; c++ {
		for r := 0; r < 4; r++ {
			t[c][r] = m[0][r]*f[c][0] + m[1][r]*f[c][1] + m[2][r]*f[c][2]
		}
	}
	m[0], m[1], m[2] = t[0], t[1], t[2]
}

// Rotated returns a copy of m rotated around axis.
func (m Mat4[T]) Rotated(axis Vec3[T], angle T) Mat4[T] {
	m.Rotate(axis, angle)
	return m
}

// Mat3 returns the upper-left 3x3 portion of the matrix.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4[T]) Ptr() *T {
	return &m[0][0]
}

// ApproxEqual reports whether every entry of m is within eps of other.
// A non-positive eps selects the package default.
func (m Mat4[T]) ApproxEqual(other Mat4[T], eps T) bool {
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

func (m Mat4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]\n[%v, %v, %v, %v]\n[%v, %v, %v, %v]\n[%v, %v, %v, %v]",
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2],
		m[0][3], m[1][3], m[2][3], m[3][3])
}
