package assets

import (
	"fmt"
	_ "image/png"
	"os"

	"go-boy-fsm/internal/config"
	"go-boy-fsm/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// Bands is the number of rows in the character sheet.
const Bands = 4

// SheetManager загружает и кэширует спрайт-листы.
type SheetManager struct {
	sheets map[string]*ebiten.Image
	log    *logrus.Entry
}

// NewSheetManager создает новый экземпляр SheetManager.
func NewSheetManager(log *logrus.Entry) *SheetManager {
	return &SheetManager{
		sheets: make(map[string]*ebiten.Image),
		log:    log,
	}
}

// Load returns the sheet at path. A missing or unreadable file is not fatal:
// the game falls back to a generated placeholder sheet of the same layout.
func (m *SheetManager) Load(path string) *ebiten.Image {
	if sheet, ok := m.sheets[path]; ok {
		return sheet
	}

	sheet, err := loadSheet(path)
	if err != nil {
		m.log.WithError(err).Warnf("using placeholder sprite sheet instead of %s", path)
		sheet = Placeholder()
	} else {
		m.log.WithField("path", path).Info("sprite sheet loaded")
	}
	m.sheets[path] = sheet
	return sheet
}

func loadSheet(path string) (*ebiten.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat sprite sheet: %w", err)
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", path, err)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w < config.FramesPerBand*config.CellSize || h < Bands*config.CellSize {
		img.Deallocate()
		return nil, fmt.Errorf("sprite sheet %s is %dx%d, need at least %dx%d",
			path, w, h, config.FramesPerBand*config.CellSize, Bands*config.CellSize)
	}
	return img, nil
}

// Placeholder draws a sheet with one colored band per row and a marker that
// walks across the frames, so animation stays visible without art.
func Placeholder() *ebiten.Image {
	const cell = float32(config.CellSize)
	sheet := ebiten.NewImage(config.FramesPerBand*config.CellSize, Bands*config.CellSize)
	for band := 0; band < Bands; band++ {
		// Полосы считаются снизу листа.
		y := float32((Bands - 1 - band) * config.CellSize)
		bandColor := render.BandColors[band]
		for frame := 0; frame < config.FramesPerBand; frame++ {
			x := float32(frame * config.CellSize)
			vector.DrawFilledRect(sheet, x+30, y+10, cell-60, cell-20, bandColor, false)
			marker := y + 15 + float32(frame)*(cell-40)/float32(config.FramesPerBand)
			vector.DrawFilledRect(sheet, x+35, marker, cell-70, 10, render.DarkenColor(bandColor), false)
		}
	}
	return sheet
}

// Cleanup освобождает все загруженные листы.
func (m *SheetManager) Cleanup() {
	for path, sheet := range m.sheets {
		sheet.Deallocate()
		delete(m.sheets, path)
	}
	m.log.Debug("all sprite sheets released")
}
