package systems

import (
	"math"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/scene3d"
	"github.com/automoto/ringview/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectedCard is a card's screen-space quad for the current frame.
type ProjectedCard struct {
	Entry   *donburi.Entry
	Corners [4]scene3d.ScreenPoint // clockwise from top-left
	Depth   float64
}

// ProjectCards projects every card in front of the camera onto the viewport.
func ProjectCards(ecs *ecs.ECS) []ProjectedCard {
	carouselEntry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return nil
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return nil
	}
	carousel := components.Carousel.Get(carouselEntry)
	camera := components.Camera.Get(cameraEntry)
	viewport := components.Viewport.Get(viewportEntry)

	viewProj := camera.ViewProjection()
	group := carousel.GroupRotation()
	w, h := float64(viewport.Width), float64(viewport.Height)
	var points []mgl64.Vec3
	var projected []scene3d.ScreenPoint

	var cards []ProjectedCard
	tags.Card.Each(ecs.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		points = scene3d.Grid(CardModel(group, card),
			float64(cfg.Carousel.CardWidth), float64(cfg.Carousel.CardHeight), 1, 1, points)

		var ok bool
		projected, ok = scene3d.ProjectAll(viewProj, points, w, h, projected)
		if !ok {
			return
		}
		cards = append(cards, ProjectedCard{
			Entry: entry,
			// Grid order is TL, TR, BL, BR
			Corners: [4]scene3d.ScreenPoint{projected[0], projected[1], projected[3], projected[2]},
			Depth:   scene3d.MeanDepth(projected),
		})
	})
	return cards
}

// CardAt returns the nearest card whose quad covers (x, y).
func CardAt(cards []ProjectedCard, x, y float64) (*donburi.Entry, bool) {
	var hit *donburi.Entry
	nearest := math.Inf(1)
	probe := vector.Vector{x, y}
	for _, pc := range cards {
		c := pc.Corners
		quad := resolv.NewConvexPolygon(0, 0,
			c[0].X, c[0].Y,
			c[1].X, c[1].Y,
			c[2].X, c[2].Y,
			c[3].X, c[3].Y,
		)
		if quad.PointInside(probe) && pc.Depth < nearest {
			hit = pc.Entry
			nearest = pc.Depth
		}
	}
	return hit, hit != nil
}

// FindCardAt hit-tests the screen point (x, y) against the ring.
func FindCardAt(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	return CardAt(ProjectCards(ecs), x, y)
}

// FindCenterCard hit-tests the middle of the viewport.
func FindCenterCard(ecs *ecs.ECS) (*donburi.Entry, bool) {
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return nil, false
	}
	viewport := components.Viewport.Get(viewportEntry)
	return FindCardAt(ecs, float64(viewport.Width)/2, float64(viewport.Height)/2)
}

// RingFront is the screen position of the ring's point nearest the camera.
// Rotation spins cards past it; only the tilt moves it.
func RingFront(ecs *ecs.ECS) (x, y float64, ok bool) {
	carouselEntry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	carousel := components.Carousel.Get(carouselEntry)
	camera := components.Camera.Get(cameraEntry)
	viewport := components.Viewport.Get(viewportEntry)

	front := scene3d.EulerXYZ(carousel.Tilt, 0, 0).Rotate(mgl64.Vec3{0, 0, cfg.Carousel.Radius})
	sp, ok := scene3d.Project(camera.ViewProjection(), front, float64(viewport.Width), float64(viewport.Height))
	return sp.X, sp.Y, ok
}
