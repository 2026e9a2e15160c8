package systems

import (
	"image"
	"math"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/yohamta/donburi/ecs"
)

// ResolveWindowSize picks, per axis, the first non-zero candidate.
func ResolveWindowSize(candidates ...image.Point) (width, height float64) {
	for _, c := range candidates {
		if width == 0 && c.X > 0 {
			width = float64(c.X)
		}
		if height == 0 && c.Y > 0 {
			height = float64(c.Y)
		}
	}
	return width, height
}

// ResolveContact picks the first touch if there is one, else the event's own position.
func ResolveContact(ev components.MoveEvent) (x, y float64) {
	if len(ev.Touches) > 0 {
		return ev.Touches[0].X, ev.Touches[0].Y
	}
	return ev.ClientX, ev.ClientY
}

// Tilt maps a position in a width×height window to rotations in [-limit, limit].
// Both extremes sit at the window edges and zero at the center.
func Tilt(x, y, width, height, limit float64) (tiltX, tiltY float64) {
	tiltX = math.Cos(math.Pi*y/height) * limit
	tiltY = math.Cos(math.Pi*x/width) * limit
	return tiltX, tiltY
}

// UpdateFollow tilts the smiley toward every mouse or touch move. It is not
// gated on a drag session.
func UpdateFollow(ecs *ecs.ECS) {
	smileyEntry, ok := components.Smiley.First(ecs.World)
	if !ok {
		return
	}
	smiley := components.Smiley.Get(smileyEntry)

	var layout, window image.Point
	if viewportEntry, ok := components.Viewport.First(ecs.World); ok {
		viewport := components.Viewport.Get(viewportEntry)
		layout = image.Pt(viewport.LayoutWidth, viewport.LayoutHeight)
		window = image.Pt(viewport.WindowWidth, viewport.WindowHeight)
	}

	queue := getOrCreatePointerQueue(ecs)
	for _, ev := range queue.Moves {
		width, height := ResolveWindowSize(layout, window, image.Pt(cfg.C.Width, cfg.C.Height))
		x, y := ResolveContact(ev)
		smiley.TiltX, smiley.TiltY = Tilt(x, y, width, height, cfg.Smiley.Limit)
	}
}
