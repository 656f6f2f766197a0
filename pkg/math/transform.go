package math

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective[T Scalar](fovY, aspect, near, far T) Mat4[T] {
	f := 1 / Tan(fovY/2)
	nf := 1 / (near - far)

	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view frustum boundaries.
// near and far define the depth range.
func Ortho[T Scalar](left, right, bottom, top, near, far T) Mat4[T] {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4[T]{
		{2 * rl, 0, 0, 0},
		{0, 2 * tb, 0, 0},
		{0, 0, -2 * fn, 0},
		{-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1},
	}
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt[T Scalar](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return Mat4[T]{
		{s.X, u.X, -f.X, 0},
		{s.Y, u.Y, -f.Y, 0},
		{s.Z, u.Z, -f.Z, 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Translate returns a translation matrix.
func Translate[T Scalar](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{v.X, v.Y, v.Z, 1},
	}
}

// Scale returns a scale matrix.
func Scale[T Scalar](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX[T Scalar](angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)

	return Mat4[T]{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY[T Scalar](angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)

	return Mat4[T]{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ[T Scalar](angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)

	return Mat4[T]{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotateAxis creates a rotation matrix around an arbitrary axis
// (Rodrigues' formula). axis should be normalized, angle is in radians.
func RotateAxis[T Scalar](axis Vec3[T], angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4[T]{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}
