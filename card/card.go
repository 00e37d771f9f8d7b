package card

import "github.com/google/uuid"

// Front is the immutable front-face payload
type Front struct {
	Text     string
	Category string

	// Gradient is an ordered sequence of hex color tokens the renderer
	// blends across the card surface
	Gradient []string
}

// Back is the optional back-face payload. Each section is independently
// optional; absent sections are omitted from render, never shown empty.
type Back struct {
	Meaning     string
	Affirmation string
	Action      string
}

// Sections returns the present back sections as label/text pairs, in
// display order
func (b Back) Sections() []Section {
	var out []Section
	if b.Meaning != "" {
		out = append(out, Section{Label: "Meaning", Text: b.Meaning})
	}
	if b.Affirmation != "" {
		out = append(out, Section{Label: "Affirmation", Text: b.Affirmation})
	}
	if b.Action != "" {
		out = append(out, Section{Label: "Action", Text: b.Action})
	}
	return out
}

// Empty reports whether no back section is present
func (b Back) Empty() bool {
	return b.Meaning == "" && b.Affirmation == "" && b.Action == ""
}

// Section is one rendered back-face block
type Section struct {
	Label string
	Text  string
}

// Card is one two-sided card. Front and Back are immutable after
// construction; Favorite is mutable and owned by the hosting screen, not by
// the flip engine.
type Card struct {
	ID       uuid.UUID
	Front    Front
	Back     *Back
	Favorite bool
}

// New creates a card with a fresh identity
func New(front Front, back *Back) *Card {
	return &Card{
		ID:    uuid.New(),
		Front: front,
		Back:  back,
	}
}

// HasBack reports whether the card has anything to flip to
func (c *Card) HasBack() bool {
	return c.Back != nil && !c.Back.Empty()
}
