package factory

import (
	"math"

	"github.com/automoto/ringview/archetypes"
	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/roster"
	"github.com/automoto/ringview/scene3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CardPosition places card index of n on a circle of radius in the XZ plane.
func CardPosition(radius float64, index, n int) mgl64.Vec3 {
	angle := 2 * math.Pi * float64(index) / float64(n)
	return mgl64.Vec3{math.Cos(angle) * radius, 0, math.Sin(angle) * radius}
}

// CreateCarousel spawns the ring state and its cards, each initially facing the camera.
func CreateCarousel(ecs *ecs.ECS, students []roster.Student, cameraPosition mgl64.Vec3) *donburi.Entry {
	carousel := archetypes.Carousel.Spawn(ecs)
	components.Carousel.Set(carousel, &components.CarouselData{})

	for i := 0; i < cfg.Carousel.NumCards; i++ {
		CreateCard(ecs, i, roster.At(students, i), cameraPosition)
	}
	return carousel
}

func CreateCard(ecs *ecs.ECS, index int, student roster.Student, cameraPosition mgl64.Vec3) *donburi.Entry {
	card := archetypes.Card.Spawn(ecs)
	position := CardPosition(cfg.Carousel.Radius, index, cfg.Carousel.NumCards)
	components.Card.Set(card, &components.CardData{
		Index:       index,
		Position:    position,
		Orientation: scene3d.LookRotation(position, cameraPosition),
		Student:     student,
	})
	return card
}

func CreateCaption(ecs *ecs.ECS) *donburi.Entry {
	caption := archetypes.Caption.Spawn(ecs)
	components.Caption.Set(caption, &components.CaptionData{CardIndex: -1})
	return caption
}

func CreateTextFit(ecs *ecs.ECS, title string) *donburi.Entry {
	fit := archetypes.TextFit.Spawn(ecs)
	components.TextFit.Set(fit, &components.TextFitData{Title: title})
	return fit
}
