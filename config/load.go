package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional calmdeck.toml and CALMDECK_*
// environment variables. Environment variables take precedence over file
// values; both override the defaults. Returns a validated Config.
func Load() (*Config, error) {
	return load("")
}

// LoadFile is Load pinned to an explicit config file path, for tests and
// the -config flag.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("flip.duration_ms", 600)
	v.SetDefault("flip.auto_flip", false)
	v.SetDefault("flip.auto_flip_delay_ms", 3000)
	v.SetDefault("audio.muted", false)
	v.SetDefault("ui.color_mode", "auto")
	v.SetDefault("deck.path", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("calmdeck")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/calmdeck")
	}

	v.SetEnvPrefix("CALMDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing discovered config file is fine; defaults and env apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
