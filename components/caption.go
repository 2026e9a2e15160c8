package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CaptionData names the card at the front of the ring.
type CaptionData struct {
	CardIndex int // -1 when no card is in front
	Text      string
	Alpha     float32
	Fade      *gween.Tween
}

var Caption = donburi.NewComponentType[CaptionData]()
