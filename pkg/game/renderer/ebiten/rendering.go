package ebiten

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starship/pkg/engine/world"
	"starship/pkg/game/locale"
	"starship/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := &e.snapshot
	if !s.valid || e.face == nil || e.loop == nil {
		return
	}

	e.drawHeader(screen)
	e.drawMap(screen, e.loop.Game.Player.Grid())
	e.drawPanel(screen)
	e.drawMessages(screen)
	e.drawConsole(screen)
}

func (e *EbitenRenderer) drawHeader(screen *ebiten.Image) {
	s := &e.snapshot
	e.drawText(screen, s.title, mapMargin, 12, styleColor(renderer.StyleAction))

	x := mapMargin + e.textWidth(s.title) + 16
	if s.paused {
		label := locale.Get("LABEL_PAUSED")
		e.drawText(screen, label, x, 12, styleColor(renderer.StyleDenied))
		x += e.textWidth(label) + 16
	}
	if s.notice != "" {
		e.drawText(screen, s.notice, x, 12, styleColor(renderer.StyleSubtle))
	}

	fps := fmt.Sprintf("%.0f fps", s.fps)
	e.drawText(screen, fps, e.windowWidth-mapMargin-e.textWidth(fps), 12, styleColor(renderer.StyleSubtle))
}

// drawMap fills every room tile with its oxygen colour, then draws walls
// where neighbouring tiles belong to different rooms, then the doors.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, grid *world.Grid) {
	s := &e.snapshot
	o := mapOrigin()

	vector.DrawFilledRect(screen, float32(o.X), float32(o.Y),
		float32(e.cols*tileSize), float32(e.rows*tileSize), colorMapBackground, false)

	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.IsSpace() {
			return
		}
		view := s.rooms[cell.Room]
		x, y := float32(o.X+col*tileSize), float32(o.Y+row*tileSize)
		vector.DrawFilledRect(screen, x, y, tileSize, tileSize,
			styleColor(renderer.OxygenStyle(view.Oxygen, s.minOxygen)), false)
	})

	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		x, y := float32(o.X+col*tileSize), float32(o.Y+row*tileSize)
		if east := grid.RoomAt(row, col+1); east != cell.Room && col+1 < grid.Cols() {
			vector.StrokeLine(screen, x+tileSize, y, x+tileSize, y+tileSize, 2, colorWall, false)
		}
		if south := grid.RoomAt(row+1, col); south != cell.Room && row+1 < grid.Rows() {
			vector.StrokeLine(screen, x, y+tileSize, x+tileSize, y+tileSize, 2, colorWall, false)
		}
	})

	for _, r := range e.loop.Game.Player.Rooms() {
		label, ok := s.roomLabels[r.ID]
		if !ok {
			continue
		}
		fp := r.Footprint
		e.drawTextCentered(screen, label, o.X+fp.X*tileSize, o.Y+fp.Y*tileSize,
			fp.Width*tileSize, fp.Height*tileSize, colorBackground)
	}

	for _, slot := range e.slots {
		drawDoorLeaf(screen, slot, s.doors[slot.Key], s.maxRetract, o.X, o.Y)
	}
}

// drawPanel draws the reactor, hull and shields, and one row of power bars
// per system, recording each row's hit box for clicks.
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image) {
	s := &e.snapshot
	x := mapMargin*2 + e.cols*tileSize
	y := headerHeight + mapMargin

	vector.DrawFilledRect(screen, float32(x-8), float32(y-8), panelWidth-mapMargin+8,
		float32((len(s.systems)+5)*lineHeight+8), colorPanelBackground, false)

	barX := x + 130
	e.drawText(screen, locale.Get("LABEL_REACTOR"), x, y, colorText)
	drawBars(screen, s.reactor, barX, y+2)
	y += lineHeight
	e.drawText(screen, fmt.Sprintf("%s %d   %s %d",
		locale.Get("LABEL_HULL"), s.hull, locale.Get("LABEL_SHIELDS"), s.shields), x, y, colorText)
	y += lineHeight * 2

	for _, row := range s.systems {
		col := styleColor(renderer.SymbolStyle(row.Symbol))
		name := row.Name.String()
		if row.Selected {
			col = styleColor(renderer.StyleSelected)
			name = "> " + name
		}
		e.drawText(screen, name, x, y, col)
		end := drawBars(screen, row.Bars, barX, y+2)
		e.systemHitBoxes[row.Name] = image.Rect(x, y, max(end, barX), y+lineHeight)
		y += lineHeight
	}

	if s.enemy != "" {
		y += lineHeight
		e.drawText(screen, locale.Get("LABEL_ENEMY")+": "+s.enemy, x, y, styleColor(renderer.StyleDenied))
	}
}

func (e *EbitenRenderer) drawMessages(screen *ebiten.Image) {
	s := &e.snapshot
	y := headerHeight + mapMargin*2 + e.rows*tileSize
	for _, msg := range s.messages {
		e.drawText(screen, msg, mapMargin, y, colorText)
		y += lineHeight
	}
}
