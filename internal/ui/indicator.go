// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-boy-fsm/internal/component"
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font.
var Face = text.NewGoXFace(basicfont.Face7x13)

// StateIndicator — кружок цвета состояния, подпись и полоса таймера задержки
type StateIndicator struct {
	X, Y   float32
	Radius float32

	lastState state.ID
	changedAt float64
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, lastState: state.Idle}
}

// Draw отрисовывает индикатор. now is game time, used to pulse the circle
// briefly after each state change.
func (i *StateIndicator) Draw(screen *ebiten.Image, current state.ID, pose component.Pose, dwell, now float64) {
	if current != i.lastState {
		i.lastState = current
		i.changedAt = now
	}
	scale := 1.0 + 0.3*math.Exp(-(now-i.changedAt)*8)
	r := i.Radius * float32(scale)

	stateColor, ok := config.StateColors[current.String()]
	if !ok {
		stateColor = config.TextLightColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)

	x := float64(i.X + i.Radius + config.HUDMarginX)
	y := float64(i.Y) - float64(config.HUDLineStep)/2
	drawText(screen, current.String(), x, y, config.TextLightColor)
	drawText(screen, fmt.Sprintf("x=%.0f dir=%+d action=%d frame=%d", pose.X, pose.Dir, pose.Action, pose.Frame),
		float64(config.HUDMarginX), y+2*config.HUDLineStep, config.TextLightColor)

	if current == state.Idle || current == state.AutoRun {
		progress := math.Min(dwell/config.DwellTimeout, 1)
		barY := float32(y + 3.5*config.HUDLineStep)
		vector.StrokeRect(screen, config.HUDMarginX, barY, config.HUDBarWidth, config.HUDBarHeight, 1, config.TextLightColor, false)
		vector.DrawFilledRect(screen, config.HUDMarginX, barY, float32(progress)*config.HUDBarWidth, config.HUDBarHeight, config.DwellBarColor, false)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face, op)
}
