package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/halcyard/calmdeck/anim"
	"github.com/halcyard/calmdeck/card"
	"github.com/halcyard/calmdeck/flip"
	"github.com/halcyard/calmdeck/input"
	"github.com/halcyard/calmdeck/parameter"
)

var backdrop = colorful.Color{R: 0.07, G: 0.07, B: 0.10}

// Status is the host bookkeeping shown in the bottom bar
type Status struct {
	Index         int
	Total         int
	FlipCount     int
	Muted         bool
	AutoFlipIn    time.Duration
	AutoFlipArmed bool
}

// Renderer draws the card widget onto a tcell screen. It is a pure
// read-only consumer of the flip engine's {Phase, Surface} snapshot; all
// state it keeps is the hit-test geometry of the last frame.
type Renderer struct {
	screen tcell.Screen

	lastCard  Box
	lastHeart Box
}

// NewRenderer creates a renderer over the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RegionAt implements input.RegionResolver using last frame's geometry
func (r *Renderer) RegionAt(x, y int) input.Region {
	if r.lastHeart.Contains(x, y) {
		return input.RegionFavorite
	}
	if r.lastCard.Contains(x, y) {
		return input.RegionCard
	}
	return input.RegionNone
}

// Draw renders one frame
func (r *Renderer) Draw(c *card.Card, phase flip.Phase, s anim.Surface, status Status) {
	r.screen.Clear()

	w, h := r.screen.Size()
	box := CardBox(w, h, s)
	r.lastCard = box

	stops := ParseGradient(c.Front.Gradient)
	faceOpacity := s.FrontOpacity
	if s.BackOpacity > faceOpacity {
		faceOpacity = s.BackOpacity
	}

	r.drawSurface(box, stops, faceOpacity)

	// Text renders only on the perceptible face; at the crossover sliver
	// both opacities are zero and the card shows bare gradient
	switch {
	case s.FrontOpacity > 0:
		r.drawFront(box, c, stops, s.FrontOpacity)
	case s.BackOpacity > 0:
		r.drawBack(box, c, stops, s.BackOpacity)
	}

	r.drawHeart(box, c, stops, faceOpacity)
	r.drawStatusBar(c, status, w, h)

	r.screen.Show()
}

// drawSurface paints the gradient card body
func (r *Renderer) drawSurface(box Box, stops []colorful.Color, opacity float64) {
	for row := 0; row < box.H; row++ {
		for col := 0; col < box.W; col++ {
			t := 0.0
			if box.W > 1 {
				t = float64(col) / float64(box.W-1)
			}
			bg := FadeToward(GradientAt(stops, t), backdrop, 0.35+0.65*opacity)
			style := tcell.StyleDefault.Background(ToTcell(bg))
			r.screen.SetContent(box.X+col, box.Y+row, ' ', nil, style)
		}
	}
}

// drawFront renders the affirmation text and category label
func (r *Renderer) drawFront(box Box, c *card.Card, stops []colorful.Color, opacity float64) {
	lines := wrapText(c.Front.Text, box.W-2*parameter.CardPaddingX)
	startY := box.Y + (box.H-len(lines))/2
	for i, line := range lines {
		r.drawCentered(box, startY+i, line, stops, opacity, true)
	}

	if c.Front.Category != "" {
		label := strings.ToUpper(c.Front.Category)
		r.drawCentered(box, box.Y+box.H-2, label, stops, opacity*0.7, false)
	}
}

// drawBack renders whichever back sections are present; absent sections
// are omitted, not shown empty
func (r *Renderer) drawBack(box Box, c *card.Card, stops []colorful.Color, opacity float64) {
	if c.Back == nil {
		r.drawCentered(box, box.Y+box.H/2, "(no back content)", stops, opacity*0.6, false)
		return
	}

	sections := c.Back.Sections()
	var lines []sectionLine
	for _, sec := range sections {
		lines = append(lines, sectionLine{text: sec.Label, label: true})
		for _, l := range wrapText(sec.Text, box.W-2*parameter.CardPaddingX) {
			lines = append(lines, sectionLine{text: l})
		}
		lines = append(lines, sectionLine{})
	}

	startY := box.Y + (box.H-len(lines))/2
	if startY < box.Y+1 {
		startY = box.Y + 1
	}
	for i, line := range lines {
		y := startY + i
		if y >= box.Y+box.H-1 {
			break
		}
		if line.text == "" {
			continue
		}
		op := opacity
		if line.label {
			op = opacity * 0.7
		}
		r.drawCentered(box, y, line.text, stops, op, !line.label)
	}
}

type sectionLine struct {
	text  string
	label bool
}

// drawHeart places the favorite glyph and records its hit region
func (r *Renderer) drawHeart(box Box, c *card.Card, stops []colorful.Color, opacity float64) {
	if box.W < 6 {
		r.lastHeart = Box{}
		return
	}

	x, y := heartCell(box)
	r.lastHeart = Box{X: x - 1, Y: y, W: 3, H: 1} // forgiving click target

	glyph := parameter.UnfavoriteGlyph
	fg := colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	if c.Favorite {
		glyph = parameter.FavoriteGlyph
		fg = colorful.Color{R: 0.95, G: 0.3, B: 0.4}
	}

	t := 1.0
	if box.W > 1 {
		t = float64(x-box.X) / float64(box.W-1)
	}
	bg := FadeToward(GradientAt(stops, t), backdrop, 0.35+0.65*opacity)
	style := tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
	r.screen.SetContent(x, y, []rune(glyph)[0], nil, style)
}

// drawCentered writes one line centered in the box, faded by opacity
func (r *Renderer) drawCentered(box Box, y int, text string, stops []colorful.Color, opacity float64, bright bool) {
	if y < box.Y || y >= box.Y+box.H {
		return
	}

	maxW := box.W - 2
	if maxW < 1 {
		return
	}
	text = runewidth.Truncate(text, maxW, "…")
	width := runewidth.StringWidth(text)
	x := box.X + (box.W-width)/2

	fg := colorful.Color{R: 0.98, G: 0.98, B: 0.98}
	if !bright {
		fg = colorful.Color{R: 0.85, G: 0.85, B: 0.88}
	}

	col := x
	for _, ru := range text {
		t := 0.0
		if box.W > 1 {
			t = float64(col-box.X) / float64(box.W-1)
		}
		bg := FadeToward(GradientAt(stops, t), backdrop, 0.35+0.65*opacity)
		style := tcell.StyleDefault.Foreground(ToTcell(FadeToward(fg, bg, opacity))).Background(ToTcell(bg))
		r.screen.SetContent(col, y, ru, nil, style)
		col += runewidth.RuneWidth(ru)
	}
}

// drawStatusBar renders the host bookkeeping line
func (r *Renderer) drawStatusBar(c *card.Card, status Status, w, h int) {
	parts := []string{
		fmt.Sprintf("card %d/%d", status.Index+1, status.Total),
	}
	if c.Front.Category != "" {
		parts = append(parts, c.Front.Category)
	}
	if status.FlipCount > 0 {
		parts = append(parts, fmt.Sprintf("flips %d", status.FlipCount))
	}
	if status.AutoFlipArmed {
		parts = append(parts, fmt.Sprintf("auto-flip in %.1fs", status.AutoFlipIn.Seconds()))
	}
	if !status.Muted {
		parts = append(parts, parameter.AudioGlyph)
	}
	parts = append(parts, "space:flip f:fav h/l:nav q:quit")

	line := strings.Join(parts, "  ·  ")
	line = runewidth.Truncate(line, w, "")

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	col := 0
	for _, ru := range line {
		r.screen.SetContent(col, h-1, ru, nil, style)
		col += runewidth.RuneWidth(ru)
	}
}

// wrapText breaks text into lines no wider than maxW cells
func wrapText(text string, maxW int) []string {
	if maxW < 1 {
		return nil
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= maxW:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
