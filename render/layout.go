package render

import (
	"math"

	"github.com/halcyard/calmdeck/anim"
	"github.com/halcyard/calmdeck/parameter"
)

// Box is a cell rectangle
type Box struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) is inside the box
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// WidthFactor converts the face rotation into the horizontal squash that
// fakes perspective on a flat cell grid: a card edge-on to the viewer has
// zero width. Front and back angles are 180° apart, so either face yields
// the same factor.
func WidthFactor(s anim.Surface) float64 {
	return math.Abs(math.Cos(s.FrontAngle * math.Pi / 180))
}

// CardBox computes the centered card rectangle for the given screen size
// and surface channels. Width shrinks with rotation and with the press
// pulse; height only with the pulse. The box never collapses below
// CardMinWidth so the edge-on sliver stays visible.
func CardBox(screenW, screenH int, s anim.Surface) Box {
	w := int(math.Round(float64(parameter.CardWidth) * s.Scale * WidthFactor(s)))
	if w < parameter.CardMinWidth {
		w = parameter.CardMinWidth
	}
	if w > screenW {
		w = screenW
	}

	h := int(math.Round(float64(parameter.CardHeight) * s.Scale))
	if h < 3 {
		h = 3
	}
	maxH := screenH - parameter.BottomMargin
	if h > maxH {
		h = maxH
	}

	return Box{
		X: (screenW - w) / 2,
		Y: (screenH - parameter.BottomMargin - h) / 2,
		W: w,
		H: h,
	}
}

// heartCell returns the favorite glyph position for a card box: inset one
// cell from the top-right corner
func heartCell(b Box) (int, int) {
	return b.X + b.W - 2, b.Y + 1
}
