package archetypes

import (
	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Carousel = newArchetype(
		components.Carousel,
	)
	Card = newArchetype(
		tags.Card,
		components.Card,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Smiley = newArchetype(
		components.Smiley,
	)
	Caption = newArchetype(
		components.Caption,
	)
	TextFit = newArchetype(
		components.TextFit,
	)
	PointerQueue = newArchetype(
		components.PointerQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
