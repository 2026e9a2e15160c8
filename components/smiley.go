package components

import (
	"github.com/automoto/ringview/illustration"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SmileyData struct {
	Illustration *illustration.Illustration
	TiltX        float64 // applied to the illustration's X rotation
	TiltY        float64
	Position     mgl64.Vec3 // canvas center in the scene

	Canvas *ebiten.Image
	Mask   *ebiten.Image // circular clip
}

var Smiley = donburi.NewComponentType[SmileyData]()
