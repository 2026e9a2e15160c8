package factory

import (
	"github.com/automoto/ringview/archetypes"
	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/scene3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, width, height int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Camera: scene3d.NewCamera(
			cfg.Camera.FOV,
			float64(width)/float64(height),
			cfg.Camera.Near,
			cfg.Camera.Far,
			mgl64.Vec3{0, 0, cfg.Camera.Z},
		),
	})
	return camera
}

func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.Set(viewport, &components.ViewportData{
		Width:        width,
		Height:       height,
		HalfX:        float64(width) / 2,
		LayoutWidth:  width,
		LayoutHeight: height,
	})
	return viewport
}
