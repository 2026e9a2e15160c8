package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T) {
	t.Helper()
	require.NoError(t, LoadFont(Regular, goregular.TTF))
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestGetPanicsForUnknownFont(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
	assert.Panics(t, func() { SizedFace("missing", 12) })
}

func TestSizedFaceIsCachedPerWholeSize(t *testing.T) {
	loadTestFont(t)

	a := SizedFace(Regular, 24.2)
	b := SizedFace(Regular, 24.9)
	c := SizedFace(Regular, 25)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestFitSizeClampsToBounds(t *testing.T) {
	loadTestFont(t)

	assert.Equal(t, 300.0, FitSize(Regular, "Hi", 100000, 16, 300))
	assert.Equal(t, 16.0, FitSize(Regular, "A very long title that cannot possibly fit", 10, 16, 300))
	assert.Equal(t, 16.0, FitSize(Regular, "", 500, 16, 300))
	assert.Equal(t, 16.0, FitSize(Regular, "Hi", 0, 16, 300))
}

func TestFitSizeFillsWidth(t *testing.T) {
	loadTestFont(t)
	const text = "Class Showcase"
	const width = 600.0

	face, size := Fit(Regular, text, width, 16, 300)
	require.Greater(t, size, 16.0)
	require.Less(t, size, 300.0)

	got := float64(font.MeasureString(face, text)) / 64
	assert.LessOrEqual(t, got, width+1)
	assert.InDelta(t, width, got, width*0.1, "fitted text should nearly fill the width")
}

func TestFitSizeScalesLinearlyWithWidth(t *testing.T) {
	loadTestFont(t)

	a := FitSize(Regular, "Ringview", 200, 1, 1000)
	b := FitSize(Regular, "Ringview", 400, 1, 1000)

	assert.InDelta(t, 2*a, b, 1e-9)
}
