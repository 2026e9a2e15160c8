package scene3d

import "github.com/go-gl/mathgl/mgl64"

// ScreenPoint is a projected point in pixels. Depth is the clip-space W,
// the distance in front of the camera.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project maps a world point to pixel coordinates on a width×height surface.
// ok is false when the point is at or behind the camera plane.
func Project(viewProj mgl64.Mat4, p mgl64.Vec3, width, height float64) (ScreenPoint, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return ScreenPoint{Depth: w}, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return ScreenPoint{
		X:     (ndcX + 1) / 2 * width,
		Y:     (1 - ndcY) / 2 * height,
		Depth: w,
	}, true
}

// ProjectAll projects every point into dst. ok is false if any point is behind the camera.
func ProjectAll(viewProj mgl64.Mat4, points []mgl64.Vec3, width, height float64, dst []ScreenPoint) ([]ScreenPoint, bool) {
	dst = dst[:0]
	for _, p := range points {
		sp, ok := Project(viewProj, p, width, height)
		if !ok {
			return dst, false
		}
		dst = append(dst, sp)
	}
	return dst, true
}

// MeanDepth is the painter's-sort key for a projected shape.
func MeanDepth(points []ScreenPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Depth
	}
	return sum / float64(len(points))
}
