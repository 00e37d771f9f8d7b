package input

// Intent discriminates semantic actions
type Intent uint8

const (
	IntentNone Intent = iota

	// System-level intents
	IntentQuit       // Ctrl+C, q
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Card intents
	IntentFlip     // Enter, Space, click on the card
	IntentFavorite // f, click on the heart glyph
	IntentNextCard // l, Right
	IntentPrevCard // h, Left
)

// String returns the intent name for logs and tests
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentResize:
		return "Resize"
	case IntentFlip:
		return "Flip"
	case IntentFavorite:
		return "Favorite"
	case IntentNextCard:
		return "NextCard"
	case IntentPrevCard:
		return "PrevCard"
	}
	return "Unknown"
}
