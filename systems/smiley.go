package systems

import (
	"github.com/automoto/ringview/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSmiley applies the latest tilt and rebuilds the face's render graph.
func UpdateSmiley(ecs *ecs.ECS) {
	smileyEntry, ok := components.Smiley.First(ecs.World)
	if !ok {
		return
	}
	smiley := components.Smiley.Get(smileyEntry)
	if smiley.Illustration == nil {
		return
	}
	smiley.Illustration.Rotate[0] = smiley.TiltX
	smiley.Illustration.Rotate[1] = smiley.TiltY
	smiley.Illustration.UpdateRenderGraph()
}
