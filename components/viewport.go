package components

import "github.com/yohamta/donburi"

// ViewportData tracks the renderer surface and the sizes reported by the window.
type ViewportData struct {
	Width  int // renderer surface
	Height int
	HalfX  float64 // horizontal reference for drag offsets

	// Latest sizes from the host, applied by the resize system on the next tick
	LayoutWidth  int
	LayoutHeight int
	WindowWidth  int
	WindowHeight int
}

var Viewport = donburi.NewComponentType[ViewportData]()
