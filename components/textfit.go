package components

import (
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
)

// TextFitData holds faces sized so their text fills the viewport width.
type TextFitData struct {
	Title     string
	TitleFace font.Face
	TitleSize float64

	CaptionText string // text CaptionFace was fitted for
	CaptionFace font.Face

	Width int // viewport width the faces were fitted for
}

var TextFit = donburi.NewComponentType[TextFitData]()
