package ebiten

import (
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "starship/pkg/engine/input"
	"starship/pkg/game/entities"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/renderer"
)

// systemRow is one line of the energy panel.
type systemRow struct {
	Name     entities.SystemName
	Symbol   entities.Symbol
	Bars     []entities.Bar
	Selected bool
}

// renderSnapshot holds what Draw needs, refreshed from the frames the loop
// returns. Ebiten calls Update and Draw on one goroutine, so no locking is
// needed between them.
type renderSnapshot struct {
	valid bool

	title      string
	rooms      map[int]gameplay.RoomView
	doors      map[string]gameplay.DoorView
	roomLabels map[int]string
	maxRetract int
	minOxygen  float64

	selected int
	systems  []systemRow
	reactor  []entities.Bar
	hull     int
	shields  int
	enemy    string

	messages []string
	notice   string
	paused   bool
	fps      float64
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	log *slog.Logger

	loop     *gameplay.Loop
	slots    []renderer.DoorSlot
	parseCtx engineinput.ParseContext

	// Grid size in tiles
	rows int
	cols int

	windowWidth  int
	windowHeight int

	monoFontSource *text.GoTextFaceSource
	face           *text.GoTextFace

	snapshot           renderSnapshot
	lastUpdate         time.Time
	windowOpenedLogged bool

	// Screen rectangles of the energy panel rows, for clicks
	systemHitBoxes map[entities.SystemName]image.Rectangle

	// Console state
	consoleActive       bool
	consoleText         string
	consoleHistory      []string
	consoleHistoryIndex int
	consoleError        string
}
