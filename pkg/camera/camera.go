// Package camera provides orbit and follow cameras built on the generic
// math types.
package camera

import (
	"github.com/Faultbox/glmath/pkg/math"
)

// Orbit orbits around a center point.
type Orbit[T math.Scalar] struct {
	// Center point to orbit around
	Center math.Vec3[T]

	// Spherical coordinates
	Distance T // Distance from center
	Pitch    T // Vertical angle above the XZ plane, radians
	Yaw      T // Horizontal angle around +Y, radians

	// Constraints
	MinDistance T
	MaxDistance T
	MinPitch    T
	MaxPitch    T

	// Sensitivity
	DragSensitivity T
	ZoomSensitivity T
}

// NewOrbit creates an orbit camera with default settings.
func NewOrbit[T math.Scalar]() *Orbit[T] {
	// Defaults are assigned through variables so every instantiation
	// compiles, including integer types too narrow to hold them.
	dist, minDist, maxDist := 200, 50, 5000
	pitch, minPitch, maxPitch := 0.5, 0.1, 1.5
	drag, zoom := 0.005, 0.1
	return &Orbit[T]{
		Distance:        T(dist),
		Pitch:           T(pitch),
		MinDistance:     T(minDist),
		MaxDistance:     T(maxDist),
		MinPitch:        T(minPitch),
		MaxPitch:        T(maxPitch),
		DragSensitivity: T(drag),
		ZoomSensitivity: T(zoom),
	}
}

// Orientation returns the camera rotation: yaw around +Y applied after a
// downward pitch around +X.
func (c *Orbit[T]) Orientation() math.Quat[T] {
	yaw := math.QuatFromAxisAngle(math.Vec3Y[T](), c.Yaw)
	pitch := math.QuatFromAxisAngle(math.Vec3X[T](), -c.Pitch)
	return yaw.Mul(pitch)
}

// Position returns the camera position in world space.
func (c *Orbit[T]) Position() math.Vec3[T] {
	return c.Center.Sub(c.Orientation().Forward().Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit[T]) ViewMatrix() math.Mat4[T] {
	return math.LookAt(c.Position(), c.Center, math.Vec3Y[T]())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Orbit[T]) HandleDrag(deltaX, deltaY T) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *Orbit[T]) HandleZoom(delta T) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point on the XZ plane relative to the
// current yaw, and vertically by up.
func (c *Orbit[T]) HandleMovement(forward, right, up T) {
	// Speed scales with distance for consistent feel
	speed := c.Distance / 100

	heading := math.QuatFromAxisAngle(math.Vec3Y[T](), c.Yaw)
	move := heading.Forward().Scale(forward).
		Add(heading.Right().Scale(right)).
		Add(math.Vec3Y[T]().Scale(up))
	c.Center.AddIn(move.Scale(speed))
}

// FitToBounds centers the camera on the box [lo, hi] and backs off far
// enough to see its horizontal extent.
func (c *Orbit[T]) FitToBounds(lo, hi math.Vec3[T]) {
	c.Center = lo.Add(hi).Div(2)

	size := hi.Sub(lo)
	minDist := 200
	c.Distance = math.Max(math.Max(size.X, size.Z)*3/10, T(minDist))

	pitch := 0.6 // Look down at ~35 degrees
	c.Pitch = T(pitch)
	c.Yaw = 0
}

// ThirdPerson follows a target from behind.
type ThirdPerson[T math.Scalar] struct {
	// Camera orientation
	Yaw   T // Horizontal rotation around target (radians)
	Pitch T // Vertical angle (radians)

	// Distance from target
	Distance    T
	MinDistance T
	MaxDistance T

	// Height above the target position that the camera looks at
	LookHeight T

	// Sensitivity
	YawSensitivity  T
	ZoomSensitivity T
}

// NewThirdPerson creates a follow camera with a steep top-down default.
func NewThirdPerson[T math.Scalar]() *ThirdPerson[T] {
	dist, minDist, maxDist := 300, 100, 800
	pitch, yawSens, zoom := 0.85, 0.005, 0.1 // ~48 degrees
	return &ThirdPerson[T]{
		Pitch:           T(pitch),
		Distance:        T(dist),
		MinDistance:     T(minDist),
		MaxDistance:     T(maxDist),
		LookHeight:      30,
		YawSensitivity:  T(yawSens),
		ZoomSensitivity: T(zoom),
	}
}

// Position returns the camera position for the given target: behind it
// along the heading and raised by the pitch.
func (c *ThirdPerson[T]) Position(target math.Vec3[T]) math.Vec3[T] {
	horiz := c.Distance * math.Cos(c.Pitch)
	dir := c.ForwardDirection()
	return math.Vec3[T]{
		X: target.X - horiz*dir.X,
		Y: target.Y + c.Distance*math.Sin(c.Pitch),
		Z: target.Z - horiz*dir.Y,
	}
}

// ViewMatrix returns the view matrix looking at LookHeight above target.
func (c *ThirdPerson[T]) ViewMatrix(target math.Vec3[T]) math.Mat4[T] {
	focus := target.Add(math.Vec3[T]{Y: c.LookHeight})
	return math.LookAt(c.Position(target), focus, math.Vec3Y[T]())
}

// HandleYaw rotates camera horizontally around target.
func (c *ThirdPerson[T]) HandleYaw(deltaX T) {
	c.Yaw -= deltaX * c.YawSensitivity
}

// HandleZoom updates distance from target.
func (c *ThirdPerson[T]) HandleZoom(delta T) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// ForwardDirection returns the heading on the XZ plane as (x, z).
func (c *ThirdPerson[T]) ForwardDirection() math.Vec2[T] {
	return math.Vec2[T]{X: math.Sin(c.Yaw), Y: math.Cos(c.Yaw)}
}

// RightDirection returns the right direction on the XZ plane as (x, z).
func (c *ThirdPerson[T]) RightDirection() math.Vec2[T] {
	return math.Vec2[T]{X: -math.Cos(c.Yaw), Y: math.Sin(c.Yaw)}
}
