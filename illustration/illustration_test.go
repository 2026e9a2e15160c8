package illustration

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateAxisConventions(t *testing.T) {
	quarter := math.Pi / 2
	tests := []struct {
		name string
		r    mgl64.Vec3
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"z turns x into y", mgl64.Vec3{0, 0, quarter}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"y turns x into z", mgl64.Vec3{0, quarter, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
		{"x turns y into z", mgl64.Vec3{quarter, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"full turn is identity", mgl64.Vec3{TAU, 0, 0}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rotate(tt.in, tt.r)
			assert.InDelta(t, 0, got.Sub(tt.want).Len(), 1e-12, "got %v", got)
		})
	}
}

func TestRotateAppliesZThenYThenX(t *testing.T) {
	// Z first sends x to y; the Y turn then leaves it alone; X sends y to z.
	got := rotate(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{math.Pi / 2, math.Pi / 2, math.Pi / 2})
	assert.InDelta(t, 0, got.Sub(mgl64.Vec3{0, 0, 1}).Len(), 1e-12, "got %v", got)
}

func TestArcControlsUseNineSixteenths(t *testing.T) {
	prev := mgl64.Vec3{0, 0, 0}
	corner := mgl64.Vec3{16, 0, 0}
	end := mgl64.Vec3{16, 16, 0}

	c1, c2 := arcControls(prev, corner, end)

	assert.Equal(t, mgl64.Vec3{9, 0, 0}, c1)
	assert.Equal(t, mgl64.Vec3{16, 7, 0}, c2)
}

func TestEllipsePathIsClosedLoop(t *testing.T) {
	path := EllipsePath(8, 26)

	require.Len(t, path, 5)
	assert.Equal(t, mgl64.Vec3{0, -13, 0}, path[0].end())
	assert.Equal(t, path[0].end(), path[4].end())
	for _, cmd := range path[1:] {
		assert.Equal(t, CommandArc, cmd.Kind)
	}
}

func TestCopyGraphIsIndependent(t *testing.T) {
	il := New(100, 100, 1)
	group := NewGroup(il.Root(), WithTranslate(mgl64.Vec3{-16, -18, 40}), WithRotate(mgl64.Vec3{-TAU / 2.2, 0, 0}))
	eye := NewEllipse(group, 8, 26, Shape{Stroke: 5, Fill: true})

	copied := group.CopyGraph(WithTranslate(mgl64.Vec3{16, -18, 40}))

	require.Len(t, il.Root().Children(), 2)
	assert.Same(t, il.Root(), copied.Parent())
	assert.Equal(t, mgl64.Vec3{16, -18, 40}, copied.Translate)
	assert.Equal(t, group.Rotate, copied.Rotate, "unset options keep the original values")

	require.Len(t, copied.Children(), 1)
	copiedEye := copied.Children()[0]
	assert.NotSame(t, eye, copiedEye)
	assert.NotSame(t, eye.Shape, copiedEye.Shape)

	copiedEye.Shape.Stroke = 1
	copiedEye.Shape.Path[0].Points[0] = mgl64.Vec3{99, 99, 99}
	assert.Equal(t, 5.0, eye.Shape.Stroke)
	assert.Equal(t, mgl64.Vec3{0, -13, 0}, eye.Shape.Path[0].Points[0])
}

func TestAddChildReparents(t *testing.T) {
	a := &Anchor{}
	b := &Anchor{}
	child := NewGroup(a)

	b.AddChild(child)

	assert.Empty(t, a.Children())
	assert.Same(t, b, child.Parent())
}

func TestEmptyPathDrawsDot(t *testing.T) {
	il := New(700, 700, 6)
	NewShape(il.Root(), Shape{Stroke: 120, Color: color.White})

	il.UpdateRenderGraph()

	items := il.RenderGraph()
	require.Len(t, items, 1)
	assert.True(t, items[0].Dot)
	assert.Equal(t, Point{X: 350, Y: 350}, items[0].Center)
	assert.Equal(t, 720.0, items[0].Width)
}

func TestRenderGraphProjectsThroughAncestors(t *testing.T) {
	il := New(200, 100, 2)
	group := NewGroup(il.Root(), WithTranslate(mgl64.Vec3{10, 0, 0}))
	NewShape(group, Shape{
		Stroke: 1,
		Path:   []Command{MoveTo(mgl64.Vec3{0, 0, 0}), LineTo(mgl64.Vec3{0, 5, 0})},
	}, WithTranslate(mgl64.Vec3{0, -5, 0}), WithScale(2))

	il.UpdateRenderGraph()

	items := il.RenderGraph()
	require.Len(t, items, 1)
	segs := items[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, Point{X: 120, Y: 40}, segs[0].Points[0])
	assert.Equal(t, Point{X: 120, Y: 60}, segs[1].Points[0])
	assert.Equal(t, 4.0, items[0].Width, "stroke scales with anchor scale and zoom")
	assert.Equal(t, color.Black, items[0].Color)
}

func TestRenderGraphSortsBackToFront(t *testing.T) {
	il := New(100, 100, 1)
	front := NewShape(il.Root(), Shape{Stroke: 1}, WithTranslate(mgl64.Vec3{0, 0, 40}))
	back := NewShape(il.Root(), Shape{Stroke: 2}, WithTranslate(mgl64.Vec3{0, 0, -10}))
	_, _ = front, back

	il.UpdateRenderGraph()
	items := il.RenderGraph()
	require.Len(t, items, 2)
	assert.Equal(t, 2.0, items[0].Width)
	assert.Equal(t, 1.0, items[1].Width)

	// Half a turn about Y swaps them
	il.Rotate = mgl64.Vec3{0, math.Pi, 0}
	il.UpdateRenderGraph()
	items = il.RenderGraph()
	assert.Equal(t, 1.0, items[0].Width)
	assert.Equal(t, 2.0, items[1].Width)
}

func TestClosedLoopCountsStartOnce(t *testing.T) {
	il := New(10, 10, 1)
	NewShape(il.Root(), Shape{Path: []Command{
		MoveTo(mgl64.Vec3{0, 0, 0}),
		LineTo(mgl64.Vec3{1, 0, 3}),
		LineTo(mgl64.Vec3{0, 0, 0}),
	}})

	il.UpdateRenderGraph()

	assert.InDelta(t, 1.5, il.RenderGraph()[0].Z, 1e-12)
}

func TestArcBecomesCubic(t *testing.T) {
	il := New(0, 0, 1)
	NewShape(il.Root(), Shape{Path: []Command{
		MoveTo(mgl64.Vec3{0, 0, 0}),
		ArcTo(mgl64.Vec3{6, -5, 0}, mgl64.Vec3{12, 0, 0}),
	}})

	il.UpdateRenderGraph()

	seg := il.RenderGraph()[0].Segments[1]
	assert.Equal(t, SegmentCubic, seg.Kind)
	assert.InDelta(t, 6*9.0/16.0, seg.Points[0].X, 1e-12)
	assert.InDelta(t, -5*9.0/16.0, seg.Points[0].Y, 1e-12)
	assert.InDelta(t, 12-6*9.0/16.0, seg.Points[1].X, 1e-12)
	assert.Equal(t, Point{X: 12, Y: 0}, seg.Points[2])
}
