package scenes

import (
	"image"
	"sync"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/systems"
	"github.com/automoto/ringview/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CarouselScene is the card ring with the smiley in the middle of it.
type CarouselScene struct {
	ecs    *ecs.ECS
	source systems.PointerSource
	once   sync.Once

	// Latest sizes reported by the host
	layout image.Point
	window image.Point
}

// NewCarouselScene builds a scene fed by src. A nil src receives no input.
func NewCarouselScene(src systems.PointerSource) *CarouselScene {
	return &CarouselScene{source: src}
}

func (cs *CarouselScene) Update() {
	cs.once.Do(cs.configure)
	cs.pushSizes()
	cs.ecs.Update()
}

func (cs *CarouselScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		screen.Fill(cfg.Colors.Background)
		return
	}
	cs.ecs.Draw(screen)
}

// Resize records the layout and window sizes. They take effect on the next Update.
func (cs *CarouselScene) Resize(layoutWidth, layoutHeight, windowWidth, windowHeight int) {
	cs.layout = image.Pt(layoutWidth, layoutHeight)
	cs.window = image.Pt(windowWidth, windowHeight)
}

// Snapshot reports the ring state. It is the zero Snapshot before the first Update.
func (cs *CarouselScene) Snapshot() systems.Snapshot {
	if cs.ecs == nil {
		return systems.Snapshot{CenterCard: -1, FrontCard: -1}
	}
	return systems.TakeSnapshot(cs.ecs)
}

func (cs *CarouselScene) pushSizes() {
	viewportEntry, ok := components.Viewport.First(cs.ecs.World)
	if !ok {
		return
	}
	viewport := components.Viewport.Get(viewportEntry)
	if cs.layout.X > 0 && cs.layout.Y > 0 {
		viewport.LayoutWidth, viewport.LayoutHeight = cs.layout.X, cs.layout.Y
	}
	viewport.WindowWidth, viewport.WindowHeight = cs.window.X, cs.window.Y
}

func (cs *CarouselScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every system sees this tick's events
	ecs.AddSystem(systems.NewUpdatePointerInput(cs.source))
	ecs.AddSystem(systems.UpdateResize)
	ecs.AddSystem(systems.UpdateDrag)
	ecs.AddSystem(systems.UpdateFollow)

	// Scene
	ecs.AddSystem(systems.UpdateCarousel)
	ecs.AddSystem(systems.UpdateSmiley)
	ecs.AddSystem(systems.UpdateCaption)
	ecs.AddSystem(systems.UpdateTextFit)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawTitle)
	ecs.AddRenderer(cfg.Default, systems.DrawRing)
	ecs.AddRenderer(cfg.Default, systems.DrawCaption)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	factory.CreateViewport(cs.ecs, cfg.C.Width, cfg.C.Height)
	camera := factory.CreateCamera(cs.ecs, cfg.C.Width, cfg.C.Height)
	factory.CreateCarousel(cs.ecs, cfg.Students, components.Camera.Get(camera).Position)
	factory.CreateSmiley(cs.ecs)
	factory.CreateCaption(cs.ecs)
	factory.CreateTextFit(cs.ecs, cfg.C.Title)
}
