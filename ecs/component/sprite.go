package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws one tile of a horizontal sprite sheet. A zero FrameW draws
// the whole image.
type Sprite struct {
	Image   *ebiten.Image
	FrameW  int
	FrameH  int
	Index   int
	FlipX   bool
	OriginX float64
	OriginY float64
}

// Source returns the sheet rectangle of the current tile.
func (s *Sprite) Source() image.Rectangle {
	if s.FrameW <= 0 || s.FrameH <= 0 {
		if s.Image == nil {
			return image.Rectangle{}
		}
		return s.Image.Bounds()
	}
	x := s.Index * s.FrameW
	return image.Rect(x, 0, x+s.FrameW, s.FrameH)
}

var SpriteComponent = NewComponent[Sprite]()
