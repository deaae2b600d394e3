// pkg/render/color.go
package render

import "image/color"

// BandColors tints the placeholder sheet, one color per sprite band.
var BandColors = []color.RGBA{
	{50, 100, 255, 255}, // бег влево
	{255, 50, 50, 255},  // бег вправо
	{50, 205, 50, 255},  // стоит, влево
	{255, 215, 0, 255},  // стоит, вправо
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
