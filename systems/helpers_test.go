package systems

import (
	"math"
	"testing"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/roster"
	"github.com/automoto/ringview/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testStudents = []roster.Student{
	{Name: "Ada", Surname: "Lovelace", Website: "https://ada.example.org"},
	{Name: "Alan", Surname: "Turing", Website: "https://turing.example.org"},
}

// newTestWorld spawns the full scene at the default window size.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateViewport(e, cfg.C.Width, cfg.C.Height)
	camera := factory.CreateCamera(e, cfg.C.Width, cfg.C.Height)
	factory.CreateCarousel(e, testStudents, components.Camera.Get(camera).Position)
	factory.CreateSmiley(e)
	factory.CreateCaption(e)
	factory.CreateTextFit(e, cfg.C.Title)
	return e
}

func carouselOf(t *testing.T, e *ecs.ECS) *components.CarouselData {
	t.Helper()
	entry, ok := components.Carousel.First(e.World)
	require.True(t, ok)
	return components.Carousel.Get(entry)
}

// faceFront turns the ring so card 0 sits nearest the camera and settles
// every card's orientation.
func faceFront(t *testing.T, e *ecs.ECS) {
	t.Helper()
	c := carouselOf(t, e)
	c.Rotation = -math.Pi / 2
	c.TargetRotation = c.Rotation
	c.Tilt = mgl64.DegToRad(cfg.Carousel.GroupTiltDeg)
	UpdateCarousel(e)
}
