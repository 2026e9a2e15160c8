package components

import (
	"github.com/automoto/ringview/roster"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type CardData struct {
	Index       int
	Position    mgl64.Vec3 // local to the ring
	Orientation mgl64.Quat // local to the ring
	Student     roster.Student
	Texture     *ebiten.Image // built on first draw
}

var Card = donburi.NewComponentType[CardData]()
