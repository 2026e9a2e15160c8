package fonts

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Regular     FontName = "regular"
	CardHeading FontName = "card-heading"
	CardLabel   FontName = "card-label"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts   = map[FontName]font.Face{}
	sources = map[FontName]*truetype.Font{}
	sized   = map[sizedKey]font.Face{}
)

type sizedKey struct {
	name FontName
	size int
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", name, err)
	}
	sources[name] = fontData
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// SizedFace returns name at the given point size, rounded down to a whole
// point. Faces are cached per size.
func SizedFace(name FontName, size float64) font.Face {
	key := sizedKey{name: name, size: int(math.Floor(size))}
	if key.size < 1 {
		key.size = 1
	}
	if f, ok := sized[key]; ok {
		return f
	}
	src, ok := sources[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	f := truetype.NewFace(src, &truetype.Options{Size: float64(key.size)})
	sized[key] = f
	return f
}
