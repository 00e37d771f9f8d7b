package card

// Deck is an ordered card list with a cursor. The deck owns the per-card
// favorite flags and flip-count bookkeeping; the flip engine never sees them.
type Deck struct {
	cards     []*Card
	cursor    int
	flipCount map[string]int
}

// NewDeck creates a deck over the given cards, cursor on the first
func NewDeck(cards []*Card) *Deck {
	return &Deck{
		cards:     cards,
		flipCount: make(map[string]int),
	}
}

// Len returns the number of cards
func (d *Deck) Len() int {
	return len(d.cards)
}

// Index returns the current cursor position
func (d *Deck) Index() int {
	return d.cursor
}

// Current returns the card under the cursor, nil for an empty deck
func (d *Deck) Current() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[d.cursor]
}

// Next advances the cursor, wrapping at the end
func (d *Deck) Next() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	d.cursor = (d.cursor + 1) % len(d.cards)
	return d.cards[d.cursor]
}

// Prev moves the cursor back, wrapping at the start
func (d *Deck) Prev() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	d.cursor = (d.cursor - 1 + len(d.cards)) % len(d.cards)
	return d.cards[d.cursor]
}

// ToggleFavorite flips the favorite flag of the current card and returns
// the new value
func (d *Deck) ToggleFavorite() bool {
	c := d.Current()
	if c == nil {
		return false
	}
	c.Favorite = !c.Favorite
	return c.Favorite
}

// RecordFlip bumps the flip counter for the current card
func (d *Deck) RecordFlip() {
	c := d.Current()
	if c == nil {
		return
	}
	d.flipCount[c.ID.String()]++
}

// FlipCount returns how many completed flips the current card has seen
func (d *Deck) FlipCount() int {
	c := d.Current()
	if c == nil {
		return 0
	}
	return d.flipCount[c.ID.String()]
}

// Favorites returns the favorited cards in deck order
func (d *Deck) Favorites() []*Card {
	var out []*Card
	for _, c := range d.cards {
		if c.Favorite {
			out = append(out, c)
		}
	}
	return out
}
