package systems

import (
	"log"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/yohamta/donburi/ecs"
)

// PointerDown starts a drag session. Non-primary pointers are ignored.
func PointerDown(c *components.CarouselData, halfX float64, ev components.PointerEvent) bool {
	if !ev.IsPrimary {
		return false
	}
	c.PointerXOnPointerDown = ev.ClientX - halfX
	c.TargetRotationOnPointerDown = c.TargetRotation
	c.Drag = components.DragDragging
	c.PointerID = ev.ID
	c.PointerKind = ev.Kind
	return true
}

// ownsDrag reports whether ev comes from the pointer that started the drag.
func ownsDrag(c *components.CarouselData, ev components.PointerEvent) bool {
	return c.Drag == components.DragDragging && ev.IsPrimary &&
		ev.Kind == c.PointerKind && ev.ID == c.PointerID
}

// PointerMove maps horizontal travel since the drag started to a target rotation.
// It has no effect outside a drag session or for any other pointer.
func PointerMove(c *components.CarouselData, halfX, sensitivity float64, ev components.PointerEvent) bool {
	if !ownsDrag(c, ev) {
		return false
	}
	c.PointerX = ev.ClientX - halfX
	c.TargetRotation = c.TargetRotationOnPointerDown + (c.PointerX-c.PointerXOnPointerDown)*sensitivity
	return true
}

// PointerUp ends the drag session started by the same pointer.
func PointerUp(c *components.CarouselData, ev components.PointerEvent) bool {
	if !ownsDrag(c, ev) {
		return false
	}
	c.Drag = components.DragIdle
	return true
}

// EaseRotation moves the current rotation a fixed fraction of the way to the
// target. It runs once per frame, so settling speed follows the frame rate.
func EaseRotation(c *components.CarouselData, easing float64) {
	c.Rotation += (c.TargetRotation - c.Rotation) * easing
}

// UpdateDrag feeds this tick's pointer events through the drag state machine.
func UpdateDrag(ecs *ecs.ECS) {
	carouselEntry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return
	}
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	carousel := components.Carousel.Get(carouselEntry)
	viewport := components.Viewport.Get(viewportEntry)
	queue := getOrCreatePointerQueue(ecs)

	for _, ev := range queue.Pointer {
		if cfg.Debug.LogPointer && (ev.Type != components.PointerMove || carousel.Drag == components.DragDragging) {
			log.Printf("%s %s id=%d primary=%t x=%.0f", ev.Type, ev.Kind, ev.ID, ev.IsPrimary, ev.ClientX)
		}
		switch ev.Type {
		case components.PointerDown:
			PointerDown(carousel, viewport.HalfX, ev)
		case components.PointerMove:
			PointerMove(carousel, viewport.HalfX, cfg.Carousel.DragSensitivity, ev)
		case components.PointerUp:
			PointerUp(carousel, ev)
		}
	}
}
