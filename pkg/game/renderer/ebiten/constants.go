// Package ebiten provides an Ebiten-based 2D graphical renderer for the ship simulation.
package ebiten

import (
	"image/color"

	"starship/pkg/game/renderer"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorConsole         = color.RGBA{10, 10, 20, 235}
)

// styleColors maps renderer styles onto the palette.
var styleColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleNormal:         colorText,
	renderer.StyleSubtle:         {120, 130, 180, 255}, // Soft blue-purple-gray
	renderer.StyleAction:         {180, 150, 250, 255}, // Blue-purple
	renderer.StyleDenied:         {255, 100, 100, 255}, // Bright red
	renderer.StyleSelected:       {255, 255, 255, 255},
	renderer.StyleOxygenFull:     {160, 160, 180, 255},
	renderer.StyleOxygenLow:      {200, 130, 140, 255},
	renderer.StyleOxygenCritical: {220, 60, 60, 255},
	renderer.StyleDoorClosed:     {255, 200, 0, 255},
	renderer.StyleDoorMoving:     {255, 240, 140, 255},
	renderer.StyleDoorOpen:       {0, 220, 0, 255},
	renderer.StyleDoorSealed:     {255, 80, 80, 255},
	renderer.StyleBarReactor:     {0, 255, 100, 255},
	renderer.StyleBarBackup:      {140, 255, 180, 255},
	renderer.StyleBarZoltan:      {255, 220, 100, 255},
	renderer.StyleBarIonized:     {100, 150, 255, 255},
	renderer.StyleBarEmpty:       {60, 60, 80, 255},
	renderer.StyleBarDamaged:     {255, 80, 80, 255},
}

func styleColor(s renderer.TextStyle) color.RGBA {
	if c, ok := styleColors[s]; ok {
		return c
	}
	return colorText
}

// Layout sizes in pixels
const (
	tileSize     = 32
	mapMargin    = 24
	headerHeight = 40
	panelWidth   = 340
	lineHeight   = 20
	barWidth     = 10
	barHeight    = 14
	barGap       = 3
	fontSize     = 14.0
	minHeight    = 480
)
