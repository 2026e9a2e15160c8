package components

import (
	"github.com/automoto/ringview/scene3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// DragState is whether a drag session currently owns the pointer.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	}
	return "unknown"
}

// CarouselData is the rotation state of the card ring.
type CarouselData struct {
	TargetRotation              float64 // radians; unbounded so the ring can spin indefinitely
	TargetRotationOnPointerDown float64 // snapshot at drag start
	PointerX                    float64 // pixels from the horizontal window center
	PointerXOnPointerDown       float64
	Rotation                    float64 // current Y rotation, eased toward TargetRotation each frame
	Tilt                        float64 // fixed X rotation in radians
	Drag                        DragState
	PointerID                   int         // ID of the primary pointer that started the drag
	PointerKind                 PointerKind // and its device
}

// GroupRotation is the ring's rotation as Euler XYZ (Tilt, Rotation, 0).
func (c *CarouselData) GroupRotation() mgl64.Quat {
	return scene3d.EulerXYZ(c.Tilt, c.Rotation, 0)
}

var Carousel = donburi.NewComponentType[CarouselData]()
