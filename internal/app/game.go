// internal/app/game.go
package app

import (
	"fmt"
	"time"

	"go-boy-fsm/internal/assets"
	"go-boy-fsm/internal/character"
	"go-boy-fsm/internal/clock"
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/event"
	"go-boy-fsm/internal/input"
	"go-boy-fsm/internal/screen"
	"go-boy-fsm/internal/state"
	"go-boy-fsm/internal/ui"
	"go-boy-fsm/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// Game holds the main game state and implements ebiten.Game.
type Game struct {
	settings   config.Settings
	log        *logrus.Logger
	clock      *clock.GameClock
	flow       *screen.Flow
	dispatcher *event.Dispatcher
	keyboard   *input.Keyboard
	boy        *character.Character
	sheets     *assets.SheetManager
	renderer   *render.SpriteRenderer
	indicator  *ui.StateIndicator
}

// NewGame wires the character, its collaborators and the screen flow.
func NewGame(settings config.Settings, log *logrus.Logger) (*Game, error) {
	g := &Game{
		settings:   settings,
		log:        log,
		clock:      clock.New(),
		dispatcher: event.NewDispatcher(),
		sheets:     assets.NewSheetManager(log.WithField("component", "assets")),
		indicator:  ui.NewStateIndicator(config.HUDMarginX+10, config.HUDMarginY+10, 10),
	}

	g.boy = character.New(g.clock,
		character.WithLogger(log),
		character.WithStateOptions(state.WithBounceOnDraw(settings.BounceOnDraw)),
	)
	g.dispatcher.Subscribe(event.KindInput, g.boy)
	g.keyboard = input.NewKeyboard(g.dispatcher, input.DefaultBindings)

	sheet := g.sheets.Load(settings.SpriteSheet)
	g.renderer = render.NewSpriteRenderer(sheet, config.ScreenHeight)

	initial := screen.Playing
	if settings.StartInMenu {
		initial = screen.Menu
	}
	flow, err := screen.NewFlow(initial, screen.Hooks{
		OnPlay: func() { g.clock.Resume(time.Now()) },
		OnStop: g.clock.Pause,
	}, log.WithField("component", "screen"))
	if err != nil {
		return nil, fmt.Errorf("create screen flow: %w", err)
	}
	g.flow = flow
	return g, nil
}

func (g *Game) Update() error {
	g.clock.Tick(time.Now())

	switch g.flow.Current() {
	case screen.Menu:
		if input.JustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
			return g.flow.Start()
		}
	case screen.Playing:
		if input.JustPressed(ebiten.KeyP, ebiten.KeyEscape) {
			return g.flow.TogglePause()
		}
		g.keyboard.Poll()
		g.boy.Update()
	case screen.Paused:
		if input.JustPressed(ebiten.KeyP, ebiten.KeyEscape) {
			return g.flow.TogglePause()
		}
	}
	return nil
}

func (g *Game) Draw(screenImg *ebiten.Image) {
	if g.flow.Current() == screen.Menu {
		ui.DrawMenu(screenImg)
		return
	}

	screenImg.Fill(config.BackgroundColor)
	groundTop := float32(config.ScreenHeight - config.StartY + config.CellSize/2)
	vector.DrawFilledRect(screenImg, 0, groundTop, config.ScreenWidth, config.ScreenHeight-groundTop, config.GroundColor, false)

	g.renderer.SetTarget(screenImg)
	g.boy.Draw(g.renderer)

	if g.settings.ShowHUD {
		g.indicator.Draw(screenImg, g.boy.State(), g.boy.Pose(), g.boy.Dwell(), g.clock.Now())
	}
	if g.flow.Current() == screen.Paused {
		ui.DrawPaused(screenImg)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close releases loaded assets.
func (g *Game) Close() {
	g.sheets.Cleanup()
}
