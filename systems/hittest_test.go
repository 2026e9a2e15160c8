package systems

import (
	"testing"

	"github.com/automoto/ringview/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingFrontHitsFrontCard(t *testing.T) {
	e := newTestWorld(t)
	faceFront(t, e)

	x, y, ok := RingFront(e)
	require.True(t, ok)
	entry, ok := FindCardAt(e, x, y)
	require.True(t, ok)
	assert.Equal(t, 0, components.Card.Get(entry).Index)
}

func TestFindCardAtMissesEmptyScreen(t *testing.T) {
	e := newTestWorld(t)
	faceFront(t, e)

	entry, ok := FindCardAt(e, 1, 1)
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestProjectCardsFrontCardIsNearest(t *testing.T) {
	e := newTestWorld(t)
	faceFront(t, e)

	cards := ProjectCards(e)
	assert.Len(t, cards, 10)

	// The front card is the nearest
	nearest := cards[0]
	for _, pc := range cards[1:] {
		if pc.Depth < nearest.Depth {
			nearest = pc
		}
	}
	assert.Equal(t, 0, components.Card.Get(nearest.Entry).Index)
}

func TestCardAtPrefersNearest(t *testing.T) {
	e := newTestWorld(t)
	faceFront(t, e)
	cards := ProjectCards(e)
	require.NotEmpty(t, cards)

	// Overlay a copy of card 0's quad that sits further away
	var front ProjectedCard
	for _, pc := range cards {
		if components.Card.Get(pc.Entry).Index == 0 {
			front = pc
		}
	}
	far := front
	far.Depth += 1000
	far.Entry = cards[len(cards)-1].Entry
	if far.Entry == front.Entry {
		far.Entry = cards[0].Entry
	}

	cx := (front.Corners[0].X + front.Corners[2].X) / 2
	cy := (front.Corners[0].Y + front.Corners[2].Y) / 2
	hit, ok := CardAt([]ProjectedCard{far, front}, cx, cy)
	require.True(t, ok)
	assert.Equal(t, front.Entry, hit)
}
