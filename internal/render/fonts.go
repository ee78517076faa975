package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces come from the embedded Go fonts so rendering never depends on
// system font paths.

// boldFace returns a Go Bold face at the given point size.
func boldFace(points float64) (font.Face, error) {
	return newFace(gobold.TTF, points)
}

// regularFace returns a Go Regular face at the given point size.
func regularFace(points float64) (font.Face, error) {
	return newFace(goregular.TTF, points)
}

func newFace(ttf []byte, points float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
