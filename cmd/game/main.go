// cmd/game/main.go
package main

import (
	"errors"
	"log"
	"os"

	"go-boy-fsm/internal/app"
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jessevdk/go-flags"
)

// options override the BOY_* environment settings when given.
type options struct {
	SpriteSheet  string  `short:"s" long:"sprite-sheet" description:"Sprite sheet PNG, 8 frames x 4 bands of 100x100 cells"`
	LogLevel     string  `short:"l" long:"log-level" description:"Log level (trace, debug, info, warn, error)"`
	LogFile      string  `long:"log-file" description:"Also write logs to this rotating file"`
	BounceOnDraw bool    `long:"bounce-on-draw" description:"Turn around at the edges after drawing instead of on update"`
	NoHUD        bool    `long:"no-hud" description:"Hide the state indicator"`
	Menu         bool    `short:"m" long:"menu" description:"Start on the title menu"`
	Scale        float64 `long:"scale" description:"Window scale factor"`
}

func parseSettings() config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}

	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.SpriteSheet != "" {
		settings.SpriteSheet = opts.SpriteSheet
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}
	if opts.LogFile != "" {
		settings.LogFile = opts.LogFile
	}
	if opts.BounceOnDraw {
		settings.BounceOnDraw = true
	}
	if opts.NoHUD {
		settings.ShowHUD = false
	}
	if opts.Menu {
		settings.StartInMenu = true
	}
	if opts.Scale != 0 {
		settings.WindowScale = opts.Scale
	}
	if err := settings.Validate(); err != nil {
		log.Fatal(err)
	}
	return settings
}

func main() {
	settings := parseSettings()

	logger, closeLog, err := logging.New(settings.LogLevel, settings.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	game, err := app.NewGame(settings, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Boy")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}
