package factory

import (
	"image/color"

	"github.com/automoto/ringview/archetypes"
	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	il "github.com/automoto/ringview/illustration"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSmiley(ecs *ecs.ECS) *donburi.Entry {
	smiley := archetypes.Smiley.Spawn(ecs)
	components.Smiley.Set(smiley, &components.SmileyData{
		Illustration: NewSmileyIllustration(cfg.Colors.Foreground, cfg.Colors.Background),
		Position:     mgl64.Vec3{0, cfg.Smiley.OffsetY, 0},
	})
	return smiley
}

// NewSmileyIllustration draws a face: two eyes, a smile with a crease at
// each end, and a round head behind them.
func NewSmileyIllustration(fg, bg color.Color) *il.Illustration {
	size := cfg.Smiley.CanvasSize
	smiley := il.New(size, size, cfg.Smiley.Zoom)
	root := smiley.Root()

	eyes := il.NewGroup(root,
		il.WithTranslate(mgl64.Vec3{-16, -18, 40}),
		il.WithRotate(mgl64.Vec3{-il.TAU / 2.2, 0, 0}),
	)
	il.NewEllipse(eyes, 8, 26, il.Shape{Stroke: 5, Color: fg, Fill: true})
	eyes.CopyGraph(il.WithTranslate(mgl64.Vec3{16, -18, 40}))

	mouth := il.NewShape(root, il.Shape{
		Path: []il.Command{
			il.MoveTo(mgl64.Vec3{-35, 20, 0}),
			il.BezierTo(mgl64.Vec3{-18, 48, 0}, mgl64.Vec3{18, 48, 0}, mgl64.Vec3{35, 20, 0}),
		},
		Stroke: 7,
		Color:  fg,
	}, il.WithTranslate(mgl64.Vec3{0, -2, 40}))

	crease := il.NewShape(mouth, il.Shape{
		Path: []il.Command{
			il.MoveTo(mgl64.Vec3{0, 0, 0}),
			il.ArcTo(mgl64.Vec3{6, -5, 0}, mgl64.Vec3{12, 0, 0}),
		},
		Stroke: 6,
		Color:  fg,
	},
		il.WithTranslate(mgl64.Vec3{-40.5, 23, 0}),
		il.WithRotate(mgl64.Vec3{0, 0, -il.TAU / 13}),
	)
	crease.CopyGraph(
		il.WithTranslate(mgl64.Vec3{29, 18, 0}),
		il.WithRotate(mgl64.Vec3{0, 0, il.TAU / 12}),
	)

	// Head
	il.NewShape(root, il.Shape{Stroke: 120, Color: bg})

	return smiley
}
