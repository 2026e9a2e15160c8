package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8000", color.RGBA{R: 255, G: 128, B: 0, A: 255}},
		{"#F80", color.RGBA{R: 255, G: 136, B: 0, A: 255}},
		{"  Black ", color.RGBA{A: 255}},
		{"rebeccapurple", color.RGBA{R: 102, G: 51, B: 153, A: 255}},
		{"RebeccaPurple", color.RGBA{R: 102, G: 51, B: 153, A: 255}},
		{"purple", color.RGBA{R: 128, G: 0, B: 128, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "#1234567", "blurple"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 254, A: 255}
	got, err := ParseColor(HexColor(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
