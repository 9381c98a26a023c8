package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera represents a 3D camera with position and orientation.
type Camera struct {
	// Position in world space
	Position mgl64.Vec3

	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)
	Roll  float64 // Rotation around Z axis (tilt)

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix     mgl64.Mat4
	projMatrix     mgl64.Mat4
	viewProjMatrix mgl64.Mat4
	viewDirty      bool
	projDirty      bool
}

// NewCamera creates a new camera with defaults suited to planetary scale.
func NewCamera() *Camera {
	return &Camera{
		Position:    mgl64.Vec3{0, 0, 100},
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1e9,
		viewDirty:   true,
		projDirty:   true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos mgl64.Vec3) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() mgl64.Vec3 {
	// Forward is -Z in camera space, rotated by yaw and pitch
	return mgl64.Vec3{
		-math.Sin(c.Yaw) * math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw) * math.Cos(c.Pitch),
	}
}

// Right returns the right direction vector.
func (c *Camera) Right() mgl64.Vec3 {
	return mgl64.Vec3{
		math.Cos(c.Yaw),
		0,
		-math.Sin(c.Yaw),
	}
}

// Up returns the up direction vector.
func (c *Camera) Up() mgl64.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	if c.viewDirty {
		c.computeViewMatrix()
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() mgl64.Mat4 {
	if c.viewDirty || c.projDirty {
		_ = c.ViewMatrix()
		_ = c.ProjectionMatrix()
		c.viewProjMatrix = c.projMatrix.Mul4(c.viewMatrix)
	}
	return c.viewProjMatrix
}

func (c *Camera) computeViewMatrix() {
	// View = Rotation * Translation(-position)
	rot := mgl64.HomogRotate3DZ(-c.Roll).Mul4(
		mgl64.HomogRotate3DX(-c.Pitch)).Mul4(
		mgl64.HomogRotate3DY(-c.Yaw))

	trans := mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())

	c.viewMatrix = rot.Mul4(trans)
}

func (c *Camera) computeProjectionMatrix() {
	c.projMatrix = mgl64.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// LookAt makes the camera look at a target point.
func (c *Camera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = math.Asin(dir.Y())
	c.Yaw = math.Atan2(-dir.X(), -dir.Z())
	c.Roll = 0

	c.viewDirty = true
}

// DistanceTo returns the Euclidean distance from the camera to a point.
func (c *Camera) DistanceTo(p mgl64.Vec3) float64 {
	return p.Sub(c.Position).Len()
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible). Depth is the camera-space
// distance, so callers can feed it to the framebuffer's depth test.
func (c *Camera) WorldToScreen(worldPos mgl64.Vec3, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	clipPos := c.ViewProjectionMatrix().Mul4x1(worldPos.Vec4(1))

	// Behind camera
	if clipPos.W() <= 0 {
		return 0, 0, 0, false
	}

	// Perspective divide to NDC (-1 to 1)
	inv := 1 / clipPos.W()
	ndcX := clipPos.X() * inv
	ndcY := clipPos.Y() * inv
	ndcZ := clipPos.Z() * inv

	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 || ndcZ < -1 || ndcZ > 1 {
		return 0, 0, 0, false
	}

	x = (ndcX + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndcY) * 0.5 * float64(screenHeight) // Y is flipped
	depth = c.DistanceTo(worldPos)

	return x, y, depth, true
}

// ProjectedRadius returns the on-screen pixel radius of a sphere with the
// given world radius at the given world position. Zero when behind the
// camera or degenerate.
func (c *Camera) ProjectedRadius(worldPos mgl64.Vec3, radius float64, screenHeight int) float64 {
	dist := c.DistanceTo(worldPos)
	if dist <= 0 || radius <= 0 {
		return 0
	}
	angular := math.Atan2(radius, dist)
	return angular / c.FOV * float64(screenHeight)
}
