package systems

import (
	"testing"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeUpdatesCameraAndDragReference(t *testing.T) {
	e := newTestWorld(t)
	viewportEntry, ok := components.Viewport.First(e.World)
	require.True(t, ok)
	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	viewport := components.Viewport.Get(viewportEntry)
	camera := components.Camera.Get(cameraEntry)

	assert.True(t, Resize(viewport, camera, 800, 400))
	assert.Equal(t, 800, viewport.Width)
	assert.Equal(t, 400, viewport.Height)
	assert.Equal(t, 400.0, viewport.HalfX)
	assert.Equal(t, 2.0, camera.Aspect)

	projection := camera.Projection
	assert.False(t, Resize(viewport, camera, 800, 400), "same size is a no-op")
	assert.Equal(t, projection, camera.Projection)

	assert.False(t, Resize(viewport, camera, 0, 400))
	assert.Equal(t, 800, viewport.Width)
}

func TestUpdateResizeAppliesLayoutSize(t *testing.T) {
	e := newTestWorld(t)
	viewportEntry, _ := components.Viewport.First(e.World)
	viewport := components.Viewport.Get(viewportEntry)
	require.Equal(t, cfg.C.Width, viewport.Width)

	viewport.LayoutWidth, viewport.LayoutHeight = 1024, 768
	UpdateResize(e)
	assert.Equal(t, 1024, viewport.Width)
	assert.Equal(t, 512.0, viewport.HalfX)

	before := *viewport
	UpdateResize(e)
	assert.Equal(t, before, *viewport)
}
