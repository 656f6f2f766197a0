// Package anim samples keyframe tracks and composes node hierarchies into
// transformation matrices.
package anim

import (
	"github.com/Faultbox/glmath/pkg/math"
)

// RotationKey is a rotation at a frame.
type RotationKey[T math.Scalar] struct {
	Frame    T
	Rotation math.Quat[T]
}

// VectorKey is a position or scale at a frame.
type VectorKey[T math.Scalar] struct {
	Frame T
	Value math.Vec3[T]
}

// bracket finds the keys surrounding time and the blend factor between
// them. Keys must be sorted by frame. Before the first key and after the
// last, prev == next.
func bracket[T math.Scalar](n int, frame func(int) T, time T) (prev, next int, t T) {
	for i := 0; i < n; i++ {
		if frame(i) > time {
			next = i
			break
		}
		prev = i
		next = i
	}
	if prev == next {
		return prev, next, 0
	}

	f0, f1 := frame(prev), frame(next)
	if f1 != f0 {
		t = (time - f0) / (f1 - f0)
	}
	return prev, next, t
}

// SampleRotation interpolates rotation keyframes at the given time.
// With no keys it returns the identity.
func SampleRotation[T math.Scalar](keys []RotationKey[T], time T) math.Quat[T] {
	if len(keys) == 0 {
		return math.QuatIdentity[T]()
	}

	prev, next, t := bracket(len(keys), func(i int) T { return keys[i].Frame }, time)
	if prev == next {
		return keys[prev].Rotation
	}
	return math.Slerp(keys[prev].Rotation, keys[next].Rotation, t)
}

// SampleVector interpolates vector keyframes at the given time.
// With no keys it returns def.
func SampleVector[T math.Scalar](keys []VectorKey[T], time T, def math.Vec3[T]) math.Vec3[T] {
	if len(keys) == 0 {
		return def
	}

	prev, next, t := bracket(len(keys), func(i int) T { return keys[i].Frame }, time)
	if prev == next {
		return keys[prev].Value
	}
	return keys[prev].Value.Lerp(keys[next].Value, t)
}
