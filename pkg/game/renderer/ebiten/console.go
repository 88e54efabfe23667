package ebiten

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineinput "starship/pkg/engine/input"
	"starship/pkg/game/locale"
	"starship/pkg/game/renderer"
	"starship/pkg/game/state"
)

const maxConsoleHistory = 50

func (e *EbitenRenderer) openConsole() {
	e.consoleActive = true
	e.consoleText = ""
	e.consoleError = ""
	e.consoleHistoryIndex = len(e.consoleHistory)
}

func (e *EbitenRenderer) closeConsole() {
	e.consoleActive = false
	e.consoleText = ""
}

// handleConsoleInput edits the command line. Enter submits it through the
// command parser; a parse error keeps the console open.
func (e *EbitenRenderer) handleConsoleInput(g *state.Game) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.closeConsole()
		return
	}

	e.consoleText += string(ebiten.AppendInputChars(nil))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && e.consoleText != "" {
		runes := []rune(e.consoleText)
		e.consoleText = string(runes[:len(runes)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && e.consoleHistoryIndex > 0 {
		e.consoleHistoryIndex--
		e.consoleText = e.consoleHistory[e.consoleHistoryIndex]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && e.consoleHistoryIndex < len(e.consoleHistory) {
		e.consoleHistoryIndex++
		e.consoleText = ""
		if e.consoleHistoryIndex < len(e.consoleHistory) {
			e.consoleText = e.consoleHistory[e.consoleHistoryIndex]
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		e.submitConsole(g)
	}
}

func (e *EbitenRenderer) submitConsole(g *state.Game) {
	line := strings.TrimSpace(e.consoleText)
	if line == "" {
		e.closeConsole()
		return
	}

	e.consoleHistory = append(e.consoleHistory, line)
	if len(e.consoleHistory) > maxConsoleHistory {
		e.consoleHistory = e.consoleHistory[len(e.consoleHistory)-maxConsoleHistory:]
	}
	e.consoleHistoryIndex = len(e.consoleHistory)

	intent, err := engineinput.Parse(e.parseCtx, line)
	if err != nil {
		e.consoleError = fmt.Sprintf(locale.Get("COMMAND_FAILED"), err)
		e.consoleText = ""
		return
	}
	g.Intents.Enqueue(intent)
	e.consoleError = ""
	e.closeConsole()
}

// drawConsole draws the command line along the bottom of the window.
func (e *EbitenRenderer) drawConsole(screen *ebiten.Image) {
	if !e.consoleActive {
		return
	}
	h := lineHeight * 2
	y := e.windowHeight - h
	vector.DrawFilledRect(screen, 0, float32(y), float32(e.windowWidth), float32(h), colorConsole, false)

	if e.consoleError != "" {
		e.drawText(screen, e.consoleError, mapMargin, y+2, styleColor(renderer.StyleDenied))
	}
	e.drawText(screen, "> "+e.consoleText+"_", mapMargin, y+lineHeight, colorText)
}
