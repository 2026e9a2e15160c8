package systems

import (
	"log"

	"github.com/automoto/ringview/components"
	"github.com/yohamta/donburi/ecs"
)

// Resize applies a new surface size to the camera, the renderer and the drag
// reference. Repeating a size is a no-op; it reports whether anything changed.
func Resize(viewport *components.ViewportData, camera *components.CameraData, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if viewport.Width == width && viewport.Height == height {
		return false
	}
	camera.Aspect = float64(width) / float64(height)
	camera.UpdateProjectionMatrix()

	viewport.Width = width
	viewport.Height = height
	viewport.HalfX = float64(width) / 2
	return true
}

// UpdateResize applies the latest layout size reported by the window.
func UpdateResize(ecs *ecs.ECS) {
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	viewport := components.Viewport.Get(viewportEntry)
	camera := components.Camera.Get(cameraEntry)

	if Resize(viewport, camera, viewport.LayoutWidth, viewport.LayoutHeight) {
		log.Printf("resized to %dx%d", viewport.Width, viewport.Height)
	}
}
