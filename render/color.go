package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// fallbackStops is the gradient used when a card carries unparseable tokens
var fallbackStops = []colorful.Color{
	{R: 0.4, G: 0.45, B: 0.92},
	{R: 0.46, G: 0.29, B: 0.64},
}

// ParseGradient converts ordered hex tokens into gradient stops.
// Unparseable tokens are skipped; a gradient with fewer than one usable
// stop falls back to the default pair.
func ParseGradient(tokens []string) []colorful.Color {
	stops := make([]colorful.Color, 0, len(tokens))
	for _, tok := range tokens {
		if c, err := colorful.Hex(tok); err == nil {
			stops = append(stops, c)
		}
	}
	if len(stops) == 0 {
		return fallbackStops
	}
	return stops
}

// GradientAt blends the ordered stops at position t in [0,1] using
// perceptual Luv interpolation, so midpoints do not turn muddy the way
// naive RGB averaging does
func GradientAt(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	scaled := t * float64(len(stops)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return stops[i].BlendLuv(stops[i+1], frac).Clamped()
}

// FadeToward blends c toward the backdrop by 1-opacity. Opacity 1 returns
// c unchanged; opacity 0 disappears into the backdrop entirely.
func FadeToward(c, backdrop colorful.Color, opacity float64) colorful.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return backdrop
	}
	return backdrop.BlendRgb(c, opacity).Clamped()
}

// ToTcell converts a colorful color to a tcell RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
