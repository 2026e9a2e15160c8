package systems

import (
	"log"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCaption names the card at the front of the ring, fading in whenever it changes.
func UpdateCaption(ecs *ecs.ECS) {
	captionEntry, ok := components.Caption.First(ecs.World)
	if !ok {
		return
	}
	caption := components.Caption.Get(captionEntry)

	index, text := -1, ""
	if x, y, ok := RingFront(ecs); ok {
		if entry, ok := FindCardAt(ecs, x, y); ok {
			card := components.Card.Get(entry)
			index, text = card.Index, card.Student.DisplayName()
		}
	}

	if index != caption.CardIndex {
		if cfg.Debug.LogPointer {
			log.Printf("front card %d -> %d", caption.CardIndex, index)
		}
		caption.CardIndex = index
		caption.Text = text
		caption.Alpha = 0
		caption.Fade = gween.New(0, 1, cfg.Caption.FadeSeconds, ease.OutQuad)
	}

	if caption.Fade != nil {
		alpha, done := caption.Fade.Update(1 / float32(cfg.C.TPS))
		caption.Alpha = alpha
		if done {
			caption.Fade = nil
		}
	}
}
