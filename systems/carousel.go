package systems

import (
	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/scene3d"
	"github.com/automoto/ringview/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCarousel turns every card toward the look-at point, then applies the
// fixed tilt and eases the ring toward its target rotation.
func UpdateCarousel(ecs *ecs.ECS) {
	carouselEntry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	carousel := components.Carousel.Get(carouselEntry)
	camera := components.Camera.Get(cameraEntry)

	// Orientation uses the ring transform from the previous frame
	target := mgl64.Vec3{0, cfg.Carousel.LookAtY, camera.Position.Z()}
	group := carousel.GroupRotation()
	tags.Card.Each(ecs.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		card.Orientation = scene3d.LocalLookAt(group, card.Position, target)
	})

	carousel.Tilt = mgl64.DegToRad(cfg.Carousel.GroupTiltDeg)
	EaseRotation(carousel, cfg.Carousel.Easing)
}

// CardModel is the card's world matrix inside the ring.
func CardModel(group mgl64.Quat, card *components.CardData) mgl64.Mat4 {
	return group.Mat4().Mul4(scene3d.Compose(card.Position, card.Orientation))
}
