package content

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/halcyard/calmdeck/card"
)

// cardSpec is the on-disk shape of one card in a TOML deck file
type cardSpec struct {
	Text     string   `mapstructure:"text"`
	Category string   `mapstructure:"category"`
	Gradient []string `mapstructure:"gradient"`
	Back     *struct {
		Meaning     string `mapstructure:"meaning"`
		Affirmation string `mapstructure:"affirmation"`
		Action      string `mapstructure:"action"`
	} `mapstructure:"back"`
}

// LoadDeck reads a TOML deck file. Card text is sanitized on the way in;
// cards without front text are rejected rather than silently dropped so a
// broken deck file is noticed.
func LoadDeck(path string) (*card.Deck, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read deck file %s: %w", path, err)
	}

	var specs []cardSpec
	if err := v.UnmarshalKey("cards", &specs); err != nil {
		return nil, fmt.Errorf("failed to parse deck file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("deck file %s contains no cards", path)
	}

	cards := make([]*card.Card, 0, len(specs))
	for i, spec := range specs {
		c, err := buildCard(spec)
		if err != nil {
			return nil, fmt.Errorf("deck file %s, card %d: %w", path, i+1, err)
		}
		cards = append(cards, c)
	}

	return card.NewDeck(cards), nil
}

func buildCard(spec cardSpec) (*card.Card, error) {
	text := sanitizeText(spec.Text)
	if text == "" {
		return nil, fmt.Errorf("card has no front text")
	}

	front := card.Front{
		Text:     text,
		Category: sanitizeText(spec.Category),
		Gradient: spec.Gradient,
	}
	if len(front.Gradient) == 0 {
		front.Gradient = defaultGradient
	}

	var back *card.Back
	if spec.Back != nil {
		b := card.Back{
			Meaning:     sanitizeText(spec.Back.Meaning),
			Affirmation: sanitizeText(spec.Back.Affirmation),
			Action:      sanitizeText(spec.Back.Action),
		}
		if !b.Empty() {
			back = &b
		}
	}

	return card.New(front, back), nil
}
