package illustration

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the current render graph onto dst. Call UpdateRenderGraph first.
func (il *Illustration) Draw(dst *ebiten.Image) {
	for i := range il.items {
		drawItem(dst, &il.items[i])
	}
}

func drawItem(dst *ebiten.Image, it *DrawItem) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(it.Color)

	var path vector.Path
	if it.Dot {
		if it.Width <= 0 {
			return
		}
		path.Arc(float32(it.Center.X), float32(it.Center.Y), float32(it.Width/2), 0, 2*math.Pi, vector.Clockwise)
		path.Close()
		vector.FillPath(dst, &path, &vector.FillOptions{}, op)
		return
	}

	for _, seg := range it.Segments {
		p := seg.Points
		switch seg.Kind {
		case SegmentMove:
			path.MoveTo(float32(p[0].X), float32(p[0].Y))
		case SegmentLine:
			path.LineTo(float32(p[0].X), float32(p[0].Y))
		case SegmentCubic:
			path.CubicTo(float32(p[0].X), float32(p[0].Y), float32(p[1].X), float32(p[1].Y), float32(p[2].X), float32(p[2].Y))
		}
	}
	if it.Closed {
		path.Close()
	}

	if it.Fill {
		vector.FillPath(dst, &path, &vector.FillOptions{}, op)
	}
	if it.Width > 0 {
		vector.StrokePath(dst, &path, &vector.StrokeOptions{
			Width:    float32(it.Width),
			LineCap:  vector.LineCapRound,
			LineJoin: vector.LineJoinRound,
		}, op)
	}
}
