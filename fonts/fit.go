package fonts

import (
	"math"

	"golang.org/x/image/font"
)

// measureSize is the point size strings are measured at before scaling.
const measureSize = 100

// FitSize returns the largest point size in [minSize, maxSize] at which s
// spans at most width pixels. Advance scales linearly with size, so one
// measurement is enough.
func FitSize(name FontName, s string, width, minSize, maxSize float64) float64 {
	if s == "" || width <= 0 {
		return minSize
	}
	advance := float64(font.MeasureString(SizedFace(name, measureSize), s)) / 64
	if advance <= 0 {
		return maxSize
	}
	size := measureSize * width / advance
	return math.Max(minSize, math.Min(maxSize, size))
}

// Fit returns the face for FitSize and the size it was built at.
func Fit(name FontName, s string, width, minSize, maxSize float64) (font.Face, float64) {
	size := FitSize(name, s, width, minSize, maxSize)
	return SizedFace(name, size), size
}
