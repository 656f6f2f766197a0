package math

import "testing"

var (
	sinkMat4 Mat4f
	sinkQuat Quatf
	sinkVec3 Vec3f
)

func BenchmarkMat4Mul(b *testing.B) {
	m := Perspective[float32](1, 1.5, 0.1, 100)
	v := LookAt(Vec3f{0, 2, 5}, Vec3f{}, Vec3Y[float32]())
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Mul(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Translate(Vec3f{1, 2, 3}).Mul(RotateY[float32](0.7))
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Inverse()
	}
}

func BenchmarkQuatFromMat4(b *testing.B) {
	m := QuatFromAxisAngle(Vec3f{0, 1, 0}, 2.5).ToMat4()
	for i := 0; i < b.N; i++ {
		sinkQuat = QuatFromMat4(m)
	}
}

func BenchmarkSlerp(b *testing.B) {
	q1 := QuatIdentity[float32]()
	q2 := QuatFromAxisAngle(Vec3f{1, 0, 0}, 1.2)
	for i := 0; i < b.N; i++ {
		sinkQuat = Slerp(q1, q2, 0.3)
	}
}

func BenchmarkQuatRotateVec3(b *testing.B) {
	q := QuatFromEuler(Vec3f{0.1, 0.2, 0.3})
	v := Vec3f{1, 2, 3}
	for i := 0; i < b.N; i++ {
		sinkVec3 = q.RotateVec3(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := Vec3f{3, 4, 12}
	for i := 0; i < b.N; i++ {
		sinkVec3 = v.Normalized()
	}
}
