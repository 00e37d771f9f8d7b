package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Flip  FlipConfig  `mapstructure:"flip" validate:"required"`
	Audio AudioConfig `mapstructure:"audio"`
	UI    UIConfig    `mapstructure:"ui" validate:"required"`
	Deck  DeckConfig  `mapstructure:"deck"`
}

// FlipConfig tunes the flip widget timing.
type FlipConfig struct {
	// DurationMs is the flip transition length in milliseconds
	DurationMs int `mapstructure:"duration_ms" validate:"required,gt=0,lte=5000"`

	// AutoFlip arms the one-shot unattended flip after AutoFlipDelayMs
	AutoFlip        bool `mapstructure:"auto_flip"`
	AutoFlipDelayMs int  `mapstructure:"auto_flip_delay_ms" validate:"required,gt=0"`
}

// AudioConfig controls the haptic-click backend.
type AudioConfig struct {
	Muted bool `mapstructure:"muted"`
}

// UIConfig contains terminal presentation settings.
type UIConfig struct {
	ColorMode string `mapstructure:"color_mode" validate:"required,oneof=auto truecolor 256"`
}

// DeckConfig selects the card deck.
type DeckConfig struct {
	// Path to a TOML deck file; empty selects the builtin deck
	Path string `mapstructure:"path" validate:"omitempty,filepath"`
}
