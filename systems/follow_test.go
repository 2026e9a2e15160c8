package systems

import (
	"image"
	"math"
	"testing"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestTiltStaysWithinLimit(t *testing.T) {
	const w, h, limit = 1280.0, 720.0, 0.35
	for x := -200.0; x <= w+200; x += 37 {
		for y := -200.0; y <= h+200; y += 29 {
			tx, ty := Tilt(x, y, w, h, limit)
			assert.LessOrEqual(t, math.Abs(tx), limit+1e-12)
			assert.LessOrEqual(t, math.Abs(ty), limit+1e-12)
		}
	}
}

func TestTiltExtremes(t *testing.T) {
	const w, h, limit = 1000.0, 500.0, 0.35

	tx, ty := Tilt(0, 0, w, h, limit)
	assert.InDelta(t, limit, tx, 1e-12)
	assert.InDelta(t, limit, ty, 1e-12)

	tx, ty = Tilt(w, h, w, h, limit)
	assert.InDelta(t, -limit, tx, 1e-12)
	assert.InDelta(t, -limit, ty, 1e-12)

	tx, ty = Tilt(w/2, h/2, w, h, limit)
	assert.InDelta(t, 0, tx, 1e-12)
	assert.InDelta(t, 0, ty, 1e-12)
}

func TestResolveWindowSizeFallsBackPerAxis(t *testing.T) {
	w, h := ResolveWindowSize(image.Pt(0, 600), image.Pt(800, 700), image.Pt(1280, 720))
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	w, h = ResolveWindowSize(image.Point{}, image.Point{}, image.Pt(1280, 720))
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 720.0, h)
}

func TestResolveContactPrefersFirstTouch(t *testing.T) {
	x, y := ResolveContact(components.MoveEvent{
		Kind:    components.PointerTouch,
		ClientX: 1, ClientY: 2,
		Touches: []dmath.Vec2{{X: 10, Y: 20}, {X: 30, Y: 40}},
	})
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)

	x, y = ResolveContact(components.MoveEvent{ClientX: 5, ClientY: 6})
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 6.0, y)
}

func TestUpdateFollowTiltsWithoutDrag(t *testing.T) {
	e := newTestWorld(t)
	q := getOrCreatePointerQueue(e)
	q.Moves = append(q.Moves, components.MoveEvent{Kind: components.PointerMouse, ClientX: 0, ClientY: float64(cfg.C.Height)})

	UpdateFollow(e)

	entry, ok := components.Smiley.First(e.World)
	require.True(t, ok)
	smiley := components.Smiley.Get(entry)
	assert.InDelta(t, -cfg.Smiley.Limit, smiley.TiltX, 1e-12)
	assert.InDelta(t, cfg.Smiley.Limit, smiley.TiltY, 1e-12)
	assert.Equal(t, components.DragIdle, carouselOf(t, e).Drag)
}
