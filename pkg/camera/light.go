package camera

import (
	"github.com/Faultbox/glmath/pkg/math"
	"github.com/Faultbox/glmath/pkg/picking"
)

// lightUp picks an up vector that is not parallel to the light direction.
func lightUp[T math.Scalar](lightDir math.Vec3[T]) math.Vec3[T] {
	limit := 0.99
	if float64(math.Abs(lightDir.Y)) > limit {
		return math.Vec3Z[T]()
	}
	return math.Vec3Y[T]()
}

// DirectionalLightMatrix computes the view-projection of a directional
// light covering the whole scene, for shadow mapping.
// lightDir is the normalized direction towards the light.
func DirectionalLightMatrix[T math.Scalar](lightDir math.Vec3[T], scene picking.AABB[T]) math.Mat4[T] {
	center := scene.Center()
	radius := scene.Radius()

	// Position light far enough to encompass entire scene
	lightDistance := radius * 2
	lightPos := center.Add(lightDir.Scale(lightDistance))

	view := math.LookAt(lightPos, center, lightUp(lightDir))

	// Orthographic projection sized to encompass the scene, with padding
	// against edge artifacts
	padding := radius / 10
	halfSize := radius + padding
	near := T(1) / 10
	far := lightDistance + radius + padding

	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far)
	return proj.Mul(view)
}

// FollowLightMatrix computes a tighter light view-projection that follows
// the camera instead of covering the whole scene. The shadowed radius grows
// with the camera distance, bounded below by 100 and above by the scene.
func FollowLightMatrix[T math.Scalar](lightDir math.Vec3[T], scene picking.AABB[T], cameraPos math.Vec3[T], cameraDistance T) math.Mat4[T] {
	// Keep Y at scene center for terrain
	focus := math.Vec3[T]{X: cameraPos.X, Y: scene.Center().Y, Z: cameraPos.Z}

	shadowRadius := math.Min(math.Max(cameraDistance*3/2, 100), scene.Radius())

	// Light distance should be enough to cover scene height
	sceneHeight := scene.Max.Y - scene.Min.Y
	lightDistance := shadowRadius + sceneHeight
	lightPos := focus.Add(lightDir.Scale(lightDistance))

	view := math.LookAt(lightPos, focus, lightUp(lightDir))

	padding := shadowRadius / 10
	halfSize := shadowRadius + padding
	near := T(1) / 10
	far := lightDistance + sceneHeight + padding

	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far)
	return proj.Mul(view)
}
