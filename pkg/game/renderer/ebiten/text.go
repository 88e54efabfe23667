package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starship/pkg/engine/world"
	"starship/pkg/game/entities"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/renderer"
)

// drawText draws str with its top left corner at x, y.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.face, op)
}

// drawTextCentered centres str in the w by h box at x, y.
func (e *EbitenRenderer) drawTextCentered(screen *ebiten.Image, str string, x, y, w, h int, col color.Color) {
	tw, th := text.Measure(str, e.face, 0)
	e.drawText(screen, str, x+int((float64(w)-tw)/2), y+int((float64(h)-th)/2), col)
}

// textWidth returns the width of str in pixels.
func (e *EbitenRenderer) textWidth(str string) int {
	w, _ := text.Measure(str, e.face, 0)
	return int(w)
}

// drawBars draws power bars left to right starting at x, y and returns the x
// after the last one.
func drawBars(screen *ebiten.Image, bars []entities.Bar, x, y int) int {
	for _, b := range bars {
		vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, barHeight,
			styleColor(renderer.BarStyle(b)), false)
		x += barWidth + barGap
	}
	return x
}

// drawDoorLeaf draws a door as two leaves that slide apart as it opens.
func drawDoorLeaf(screen *ebiten.Image, slot renderer.DoorSlot, d gameplay.DoorView, maxRetract, x0, y0 int) {
	r := slot.Rect(tileSize)
	col := styleColor(renderer.DoorStyle(d))
	x, y := float32(x0+r.Min.X), float32(y0+r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	vector.StrokeRect(screen, x, y, w, h, 1, styleColor(renderer.StyleSubtle), false)

	closed := float32(1)
	if maxRetract > 0 {
		closed = 1 - min(1, float32(d.Position)/float32(maxRetract))
	}
	if closed <= 0 {
		return
	}
	if slot.Orientation == world.Vertical {
		leaf := h / 2 * closed
		vector.DrawFilledRect(screen, x, y, w, leaf, col, false)
		vector.DrawFilledRect(screen, x, y+h-leaf, w, leaf, col, false)
		return
	}
	leaf := w / 2 * closed
	vector.DrawFilledRect(screen, x, y, leaf, h, col, false)
	vector.DrawFilledRect(screen, x+w-leaf, y, leaf, h, col, false)
}
