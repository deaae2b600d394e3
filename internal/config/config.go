// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06
	TicksPerSec  = 30 // один тик = один кадр анимации

	CellSize       = 100 // размер ячейки спрайт-листа
	FramesPerBand  = 8
	AutoRunSize    = 200 // AutoRun рисуется увеличенным
	AutoRunOffsetY = 35
	SleepOffset    = 25

	RunSpeed     = 5.0  // пикселей за тик
	AutoRunSpeed = 20.0 // 4× RunSpeed
	DwellTimeout = 4.0  // секунд до самостоятельного Timeout

	BoundLeft  = 0.0
	BoundRight = 800.0

	StartX      = 400.0
	StartY      = 90.0
	StartAction = 3

	HUDMarginX   = 10
	HUDMarginY   = 10
	HUDLineStep  = 16
	HUDBarWidth  = 120
	HUDBarHeight = 6
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 120, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	DwellBarColor   = color.RGBA{194, 178, 128, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	StateColors     = map[string]color.RGBA{
		"Idle":    {70, 130, 180, 220},
		"Sleep":   {128, 128, 128, 220},
		"Run":     {50, 205, 50, 220},
		"AutoRun": {220, 60, 60, 220},
	}
)
