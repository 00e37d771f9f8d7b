package parameter

import "time"

// Frame loop
const (
	// FrameInterval targets ~60fps for the terminal frame pump
	FrameInterval = 16 * time.Millisecond
)

// Card layout
const (
	// CardWidth is the card box width at rest scale, in cells
	CardWidth = 44

	// CardHeight is the card box height, in cells
	CardHeight = 14

	// CardMinWidth is the narrowest the box gets mid-flip before the
	// incoming face starts widening again
	CardMinWidth = 2

	// CardPaddingX is the horizontal text padding inside the card
	CardPaddingX = 3

	// BottomMargin reserves one line for the status bar
	BottomMargin = 1
)

// Status bar & symbols
const (
	FavoriteGlyph   = "♥"
	UnfavoriteGlyph = "♡"
	AudioGlyph      = "♫ "

	// StatusMessageTimeout is how long transient status messages persist
	StatusMessageTimeout = 2 * time.Second
)
