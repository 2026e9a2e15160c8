package systems

import (
	"math"
	"testing"

	"github.com/automoto/ringview/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionFadesInFrontCardName(t *testing.T) {
	e := newTestWorld(t)
	faceFront(t, e)
	entry, ok := components.Caption.First(e.World)
	require.True(t, ok)
	caption := components.Caption.Get(entry)

	UpdateCaption(e)
	assert.Equal(t, 0, caption.CardIndex)
	assert.Equal(t, "Ada Lovelace", caption.Text)
	assert.Greater(t, caption.Alpha, float32(0))
	assert.Less(t, caption.Alpha, float32(1))

	for i := 0; i < 60; i++ {
		UpdateCaption(e)
	}
	assert.InDelta(t, 1, caption.Alpha, 1e-6)
	assert.Nil(t, caption.Fade)
}

func TestCaptionRestartsFadeWhenCardChanges(t *testing.T) {
	e := newTestWorld(t)
	faceFront(t, e)
	entry, _ := components.Caption.First(e.World)
	caption := components.Caption.Get(entry)
	for i := 0; i < 60; i++ {
		UpdateCaption(e)
	}
	require.Equal(t, 0, caption.CardIndex)

	// Card 1 sits a tenth of a turn further on
	c := carouselOf(t, e)
	c.Rotation += 2 * math.Pi / 10
	c.TargetRotation = c.Rotation
	UpdateCarousel(e)
	UpdateCaption(e)

	assert.Equal(t, 1, caption.CardIndex)
	assert.Equal(t, "Alan Turing", caption.Text)
	assert.Less(t, caption.Alpha, float32(1))
}
