// Package scene3d is the small slice of a retained 3D scene the carousel needs:
// a perspective camera, object transforms with look-at, and point projection.
package scene3d

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera at Position looking down -Z.
type Camera struct {
	Position   mgl64.Vec3
	FOV        float64 // vertical, degrees
	Aspect     float64
	Near       float64
	Far        float64
	Projection mgl64.Mat4
}

func NewCamera(fov, aspect, near, far float64, position mgl64.Vec3) Camera {
	c := Camera{
		Position: position,
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix must be called after changing FOV, Aspect, Near or Far.
func (c *Camera) UpdateProjectionMatrix() {
	c.Projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
}

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection.Mul4(c.View())
}
