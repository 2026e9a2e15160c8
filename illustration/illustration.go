package illustration

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

type SegmentKind int

const (
	SegmentMove SegmentKind = iota
	SegmentLine
	SegmentCubic
)

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Segment is one projected path step. Move and line use Points[0];
// a cubic uses control1, control2, end.
type Segment struct {
	Kind   SegmentKind
	Points [3]Point
}

// DrawItem is one shape of the flattened render graph.
type DrawItem struct {
	Segments []Segment
	Dot      bool
	Center   Point   // dot center
	Width    float64 // stroke width in pixels
	Color    color.Color
	Fill     bool
	Closed   bool
	Z        float64 // mean Z of the path's end points; larger is nearer the viewer
}

// Illustration is the root of a shape graph drawn onto a Width×Height canvas,
// with the origin at the canvas center and Y pointing down.
type Illustration struct {
	Anchor
	Zoom   float64
	Width  int
	Height int

	items []DrawItem
}

func New(width, height int, zoom float64) *Illustration {
	return &Illustration{Width: width, Height: height, Zoom: zoom}
}

// Root is the anchor new shapes are added to.
func (il *Illustration) Root() *Anchor {
	return &il.Anchor
}

// RenderGraph is the draw list from the last UpdateRenderGraph, back to front.
func (il *Illustration) RenderGraph() []DrawItem {
	return il.items
}

// UpdateRenderGraph re-projects every shape with the current transforms and
// sorts the result back to front.
func (il *Illustration) UpdateRenderGraph() {
	il.items = il.items[:0]
	cx, cy := float64(il.Width)/2, float64(il.Height)/2
	il.Anchor.walk(func(a *Anchor) {
		if a.Shape == nil {
			return
		}
		il.items = append(il.items, il.flatten(a, cx, cy))
	})
	sort.SliceStable(il.items, func(i, j int) bool {
		return il.items[i].Z < il.items[j].Z
	})
}

func (il *Illustration) flatten(a *Anchor, cx, cy float64) DrawItem {
	s := a.Shape
	item := DrawItem{
		Width:  s.Stroke * a.worldScale() * il.Zoom,
		Color:  s.Color,
		Fill:   s.Fill,
		Closed: s.Closed,
	}
	if item.Color == nil {
		item.Color = color.Black
	}

	project := func(p mgl64.Vec3) (Point, float64) {
		w := a.toWorld(p)
		return Point{X: cx + w.X()*il.Zoom, Y: cy + w.Y()*il.Zoom}, w.Z()
	}

	path := s.Path
	if len(path) == 0 {
		path = []Command{MoveTo(mgl64.Vec3{})}
	}
	if len(path) == 1 {
		item.Dot = true
		item.Center, item.Z = project(path[0].end())
		return item
	}

	prev := path[0].end()
	start, z := project(prev)
	item.Segments = append(item.Segments, Segment{Kind: SegmentMove, Points: [3]Point{start}})
	ends := []mgl64.Vec3{prev}
	zs := []float64{z}

	for _, cmd := range path[1:] {
		end := cmd.end()
		endPt, endZ := project(end)
		switch {
		case cmd.Kind == CommandMove:
			item.Segments = append(item.Segments, Segment{Kind: SegmentMove, Points: [3]Point{endPt}})
		case cmd.Kind == CommandArc && len(cmd.Points) == 2:
			c1, c2 := arcControls(prev, cmd.Points[0], end)
			p1, _ := project(c1)
			p2, _ := project(c2)
			item.Segments = append(item.Segments, Segment{Kind: SegmentCubic, Points: [3]Point{p1, p2, endPt}})
		case cmd.Kind == CommandBezier && len(cmd.Points) == 3:
			p1, _ := project(cmd.Points[0])
			p2, _ := project(cmd.Points[1])
			item.Segments = append(item.Segments, Segment{Kind: SegmentCubic, Points: [3]Point{p1, p2, endPt}})
		default:
			item.Segments = append(item.Segments, Segment{Kind: SegmentLine, Points: [3]Point{endPt}})
		}
		prev = end
		ends = append(ends, end)
		zs = append(zs, endZ)
	}

	// A path that returns to its start counts that point once
	if len(ends) > 2 && ends[0].ApproxEqual(ends[len(ends)-1]) {
		zs = zs[:len(zs)-1]
	}
	var sum float64
	for _, v := range zs {
		sum += v
	}
	item.Z = sum / float64(len(zs))
	return item
}
