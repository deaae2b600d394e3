package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs read from the environment and, in cmd/game,
// overridden by command line flags.
type Settings struct {
	SpriteSheet  string  `env:"BOY_SPRITE_SHEET" envDefault:"animation_sheet.png"`
	LogLevel     string  `env:"BOY_LOG_LEVEL" envDefault:"info"`
	LogFile      string  `env:"BOY_LOG_FILE"`
	BounceOnDraw bool    `env:"BOY_BOUNCE_ON_DRAW" envDefault:"false"`
	ShowHUD      bool    `env:"BOY_SHOW_HUD" envDefault:"true"`
	StartInMenu  bool    `env:"BOY_START_IN_MENU" envDefault:"false"`
	WindowScale  float64 `env:"BOY_WINDOW_SCALE" envDefault:"1"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects values the game cannot run with.
func (s Settings) Validate() error {
	if s.WindowScale <= 0 {
		return fmt.Errorf("window scale must be positive, got %g", s.WindowScale)
	}
	if s.SpriteSheet == "" {
		return fmt.Errorf("sprite sheet path is empty")
	}
	return nil
}
