package ui

import (
	"go-boy-fsm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPaused dims the screen and prints PAUSED in the middle.
func DrawPaused(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawCentered(screen, "PAUSED", config.ScreenHeight/2)
	drawCentered(screen, "P / Esc to resume", config.ScreenHeight/2+2*config.HUDLineStep)
}

// DrawMenu draws the title screen.
func DrawMenu(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "BOY", config.ScreenHeight/3)
	drawCentered(screen, "Enter to start", config.ScreenHeight/2)
	drawCentered(screen, "arrows: run   A: auto-run   space: stop / wake   P: pause", config.ScreenHeight/2+2*config.HUDLineStep)
}

func drawCentered(screen *ebiten.Image, s string, y float64) {
	w, _ := text.Measure(s, Face, 0)
	drawText(screen, s, (config.ScreenWidth-w)/2, y, config.TextLightColor)
}
