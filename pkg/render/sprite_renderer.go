package render

import (
	"image"

	"go-boy-fsm/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRenderer blits sprite-sheet cells onto the screen. Cells arrive in
// world coordinates (origin bottom-left, y up, destination is the cell
// center) and are converted to ebiten's top-left, y-down space here.
type SpriteRenderer struct {
	sheet        *ebiten.Image
	screen       *ebiten.Image
	screenHeight float64
}

var _ state.Renderer = (*SpriteRenderer)(nil)

// NewSpriteRenderer creates a renderer for sheet on a screen screenHeight
// pixels tall.
func NewSpriteRenderer(sheet *ebiten.Image, screenHeight int) *SpriteRenderer {
	return &SpriteRenderer{sheet: sheet, screenHeight: float64(screenHeight)}
}

// SetTarget selects the image subsequent DrawCell calls draw onto.
func (r *SpriteRenderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

// DrawCell implements state.Renderer.
func (r *SpriteRenderer) DrawCell(c state.Cell) {
	if r.screen == nil {
		return
	}
	src := SourceRect(c, r.sheet.Bounds().Dy())
	sub := r.sheet.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(c.W)/2, -float64(c.H)/2)
	if c.DstW != float64(c.W) || c.DstH != float64(c.H) {
		op.GeoM.Scale(c.DstW/float64(c.W), c.DstH/float64(c.H))
	}
	if c.Rotation != 0 {
		// Положительный угол — против часовой стрелки в мировых координатах,
		// а ось y экрана смотрит вниз.
		op.GeoM.Rotate(-c.Rotation)
	}
	op.GeoM.Translate(c.DstX, r.screenHeight-c.DstY)
	op.Filter = ebiten.FilterNearest
	r.screen.DrawImage(sub, op)
}

// SourceRect converts a bottom-left based cell to an image rectangle on a
// sheet sheetHeight pixels tall.
func SourceRect(c state.Cell, sheetHeight int) image.Rectangle {
	top := sheetHeight - c.SrcY - c.H
	return image.Rect(c.SrcX, top, c.SrcX+c.W, top+c.H)
}
