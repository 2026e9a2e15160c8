package tags

import "github.com/yohamta/donburi"

var (
	Card = donburi.NewTag().SetName("Card")
)
