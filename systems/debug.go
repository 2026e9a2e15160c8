package systems

import (
	"fmt"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot is the ring state reported by the debug overlay and the headless runner.
type Snapshot struct {
	Rotation       float64
	TargetRotation float64
	Tilt           float64
	Drag           components.DragState
	SmileyTiltX    float64
	SmileyTiltY    float64
	CenterCard     int // -1 when the viewport center misses every card
	FrontCard      int // card under the caption, -1 if none
	Width, Height  int
}

func (s Snapshot) String() string {
	return fmt.Sprintf("rotation=%.4f target=%.4f tilt=%.4f drag=%s smiley=(%.3f, %.3f) center=%d front=%d viewport=%dx%d",
		s.Rotation, s.TargetRotation, s.Tilt, s.Drag, s.SmileyTiltX, s.SmileyTiltY,
		s.CenterCard, s.FrontCard, s.Width, s.Height)
}

// TakeSnapshot reads the current state. The viewport center is hit-tested on demand.
func TakeSnapshot(ecs *ecs.ECS) Snapshot {
	s := Snapshot{CenterCard: -1, FrontCard: -1}
	if e, ok := components.Carousel.First(ecs.World); ok {
		c := components.Carousel.Get(e)
		s.Rotation, s.TargetRotation, s.Tilt, s.Drag = c.Rotation, c.TargetRotation, c.Tilt, c.Drag
	}
	if e, ok := components.Smiley.First(ecs.World); ok {
		sm := components.Smiley.Get(e)
		s.SmileyTiltX, s.SmileyTiltY = sm.TiltX, sm.TiltY
	}
	if e, ok := components.Viewport.First(ecs.World); ok {
		v := components.Viewport.Get(e)
		s.Width, s.Height = v.Width, v.Height
	}
	if e, ok := components.Caption.First(ecs.World); ok {
		s.FrontCard = components.Caption.Get(e).CardIndex
	}
	if e, ok := FindCenterCard(ecs); ok {
		s.CenterCard = components.Card.Get(e).Index
	}
	return s
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\n%s", ebiten.ActualTPS(), TakeSnapshot(ecs)))
}
