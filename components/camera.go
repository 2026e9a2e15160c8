package components

import (
	"github.com/automoto/ringview/scene3d"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	scene3d.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
