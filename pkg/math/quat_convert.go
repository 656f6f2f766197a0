package math

import "go.uber.org/zap"

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle[T Scalar](axis Vec3[T], angle T) Quat[T] {
	halfAngle := angle / 2
	s := Sin(halfAngle)
	return Quat[T]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: Cos(halfAngle),
	}
}

// QuatFromEuler creates a quaternion from Euler angles in radians, with
// e.X the roll, e.Y the pitch and e.Z the yaw. The result is normalized.
func QuatFromEuler[T Scalar](e Vec3[T]) Quat[T] {
	half := Half[T]()
	cr, sr := Cos(e.X*half), Sin(e.X*half)
	cp, sp := Cos(e.Y*half), Sin(e.Y*half)
	cy, sy := Cos(e.Z*half), Sin(e.Z*half)

	return Quat[T]{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}.Normalized()
}

// ToEuler returns (roll, pitch, yaw) in radians as X, Y and Z.
// Near gimbal lock the pitch is clamped to ±π/2.
func (q Quat[T]) ToEuler() Vec3[T] {
	var e Vec3[T]

	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	e.X = Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if Abs(sinp) >= 1 {
		e.Y = Pi[T]() / 2
		if sinp < 0 {
			e.Y = -e.Y
		}
		diag().Debug("pitch clamped at gimbal lock", zap.Float64("sinp", float64(sinp)))
	} else {
		e.Y = Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	e.Z = Atan2(sinyCosp, cosyCosp)

	return e
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix. q is expected to
// be normalized; otherwise the result also scales and skews.
func (q Quat[T]) ToMat4() Mat4[T] {
	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4[T]{
		{1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0},
		{2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0},
		{2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}

// ToMat3 converts the quaternion to a 3x3 rotation matrix.
func (q Quat[T]) ToMat3() Mat3[T] {
	return q.ToMat4().Mat3()
}

// QuatFromMat4 extracts the rotation of the upper 3x3 block of m using
// Shepperd's method. The block must be a pure rotation.
func QuatFromMat4[T Scalar](m Mat4[T]) Quat[T] {
	return quatFromRotation(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2])
}

// QuatFromMat3 extracts the rotation of m using Shepperd's method.
func QuatFromMat3[T Scalar](m Mat3[T]) Quat[T] {
	return quatFromRotation(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2])
}

// quatFromRotation takes the rotation entries in row order (rRC is row R,
// column C). With a negative trace, the component of the largest diagonal
// entry is derived first so the square root argument stays positive.
func quatFromRotation[T Scalar](r00, r01, r02, r10, r11, r12, r20, r21, r22 T) Quat[T] {
	var q Quat[T]
	half := Half[T]()

	trace := r00 + r11 + r22
	switch {
	case trace >= 0:
		s := Sqrt(trace + 1)
		q.W = s * half
		s = half / s
		q.X = (r21 - r12) * s
		q.Y = (r02 - r20) * s
		q.Z = (r10 - r01) * s
	case r00 >= r11 && r00 >= r22:
		s := Sqrt(r00 - r11 - r22 + 1)
		q.X = s * half
		s = half / s
		q.Y = (r01 + r10) * s
		q.Z = (r02 + r20) * s
		q.W = (r21 - r12) * s
	case r11 >= r22:
		s := Sqrt(r11 - r22 - r00 + 1)
		q.Y = s * half
		s = half / s
		q.Z = (r12 + r21) * s
		q.X = (r10 + r01) * s
		q.W = (r02 - r20) * s
	default:
		s := Sqrt(r22 - r00 - r11 + 1)
		q.Z = s * half
		s = half / s
		q.X = (r20 + r02) * s
		q.Y = (r21 + r12) * s
		q.W = (r10 - r01) * s
	}
	return q
}

// Rotate rotates q by angle radians around axis (normalized), composing the
// rotation on q's matrix and extracting the result again.
func (q *Quat[T]) Rotate(axis Vec3[T], angle T) {
	m := q.ToMat4()
	m.Rotate(axis, angle)
	*q = QuatFromMat4(m)
	q.Normalize()
}

// Rotated returns a copy of q rotated around axis.
func (q Quat[T]) Rotated(axis Vec3[T], angle T) Quat[T] {
	q.Rotate(axis, angle)
	return q
}

// QuatLookRotation returns the rotation whose Forward is forward and whose
// Up lies in the plane of forward and up.
func QuatLookRotation[T Scalar](forward, up Vec3[T]) Quat[T] {
	forward.Normalize()
	up.Normalize()

	right := forward.Cross(up).Normalized()
	up = right.Cross(forward)

	// Forward is -Z, so the third basis column points backwards.
	m := Mat3FromAxes(right, up, forward.Neg())
	return QuatFromMat3(m).Normalized()
}
