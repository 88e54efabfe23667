package ebiten

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "starship/pkg/engine/input"
	"starship/pkg/game/renderer"
	"starship/pkg/game/state"
)

// keyCodes names Ebiten keys with the codes the key bindings use.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyTab:            "tab",
	ebiten.KeySpace:          "space",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyJ:              "j",
	ebiten.KeyK:              "k",
	ebiten.KeyP:              "p",
	ebiten.KeyH:              "h",
	ebiten.KeyQ:              "q",
}

// handleInput turns this update's key presses and clicks into intents.
func (e *EbitenRenderer) handleInput(g *state.Game) {
	if e.consoleActive {
		e.handleConsoleInput(g)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		e.openConsole()
		return
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			e.enqueueKey(g, engineinput.DeviceKeyboard, code)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		e.enqueueKey(g, engineinput.DeviceKeyboard, "?")
	}

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if left || right {
		e.handleClick(g, image.Pt(ebiten.CursorPosition()), right)
	}
}

func (e *EbitenRenderer) enqueueKey(g *state.Game, device engineinput.Device, code string) {
	raw := engineinput.RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}
	g.Intents.Enqueue(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)))
}

// handleClick toggles the door under the cursor, or powers the system row
// under it: left click adds a unit, right click removes one.
func (e *EbitenRenderer) handleClick(g *state.Game, p image.Point, right bool) {
	if !right {
		if key, ok := renderer.DoorAt(e.slots, tileSize, p.Sub(mapOrigin())); ok {
			g.Intents.Enqueue(engineinput.Intent{Action: engineinput.ActionToggleDoor, Target: key})
			return
		}
	}
	for name, box := range e.systemHitBoxes {
		if !p.In(box) {
			continue
		}
		action := engineinput.ActionAddPower
		if right {
			action = engineinput.ActionRemovePower
		}
		g.Intents.Enqueue(engineinput.Intent{Action: action, Target: name.String()})
		return
	}
}

// mapOrigin is the screen position of the top left grid tile.
func mapOrigin() image.Point {
	return image.Pt(mapMargin, headerHeight+mapMargin)
}
