package input

import "github.com/gdamore/tcell/v2"

// Region identifies what part of the screen a mouse gesture landed on
type Region uint8

const (
	RegionNone Region = iota
	RegionCard
	RegionFavorite
)

// RegionResolver maps cell coordinates to a hit region. The renderer
// implements this; input stays ignorant of layout.
type RegionResolver interface {
	RegionAt(x, y int) Region
}

// Translate maps a raw tcell event to a routed gesture event.
// Returns nil for events that carry no intent.
func Translate(ev tcell.Event, regions RegionResolver) *Event {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(tev)
	case *tcell.EventMouse:
		return translateMouse(tev, regions)
	case *tcell.EventResize:
		return NewEvent(IntentResize)
	}
	return nil
}

func translateKey(ev *tcell.EventKey) *Event {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return NewEvent(IntentQuit)
	case tcell.KeyEnter:
		return NewEvent(IntentFlip)
	case tcell.KeyRight:
		return NewEvent(IntentNextCard)
	case tcell.KeyLeft:
		return NewEvent(IntentPrevCard)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return NewEvent(IntentFlip)
		case 'f':
			return NewEvent(IntentFavorite)
		case 'l':
			return NewEvent(IntentNextCard)
		case 'h':
			return NewEvent(IntentPrevCard)
		case 'm':
			return NewEvent(IntentToggleMute)
		case 'q':
			return NewEvent(IntentQuit)
		}
	}
	return nil
}

func translateMouse(ev *tcell.EventMouse, regions RegionResolver) *Event {
	if ev.Buttons()&tcell.Button1 == 0 {
		return nil
	}

	x, y := ev.Position()
	if regions == nil {
		return nil
	}

	// Favorite region resolves before the card region: the heart glyph sits
	// on top of the card surface and owns its gesture outright
	switch regions.RegionAt(x, y) {
	case RegionFavorite:
		return NewMouseEvent(IntentFavorite, x, y)
	case RegionCard:
		return NewMouseEvent(IntentFlip, x, y)
	}
	return nil
}
