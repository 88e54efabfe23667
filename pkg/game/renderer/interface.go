package renderer

import (
	"starship/pkg/game/gameplay"
	"starship/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleSubtle
	StyleAction
	StyleDenied
	StyleSelected
	StyleOxygenFull
	StyleOxygenLow
	StyleOxygenCritical
	StyleDoorClosed
	StyleDoorMoving
	StyleDoorOpen
	StyleDoorSealed
	StyleBarReactor
	StyleBarBackup
	StyleBarZoltan
	StyleBarIonized
	StyleBarEmpty
	StyleBarDamaged
)

// Renderer defines the interface for display backends.
// Implementations include the terminal (TUI) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws the game after a simulation step; f lists what the
	// step changed.
	RenderFrame(g *state.Game, f gameplay.Frame)

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return markup
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game, f gameplay.Frame) {
	if Current != nil {
		Current.RenderFrame(g, f)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
