package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the simulation.
type Action int

const (
	ActionNone Action = iota

	// Ship commands
	ActionToggleDoor  // Target is a door key
	ActionAddPower    // Target is a system name, empty for the selected system
	ActionRemovePower // Target is a system name, empty for the selected system

	// System selection
	ActionSelectNext
	ActionSelectPrev

	// Meta / UI
	ActionPause
	ActionHelp
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Target string
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "space", "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed helpers and terminal raw mode already deliver one event
// per press, so this only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Power on the selected system
	"+":               ActionAddPower,
	"=":               ActionAddPower,
	"numpad_add":      ActionAddPower,
	"-":               ActionRemovePower,
	"numpad_subtract": ActionRemovePower,

	// Selection
	"arrow_down": ActionSelectNext,
	"tab":        ActionSelectNext,
	"j":          ActionSelectNext,
	"arrow_up":   ActionSelectPrev,
	"k":          ActionSelectPrev,

	"space": ActionPause,
	"p":     ActionPause,

	"?": ActionHelp,
	"h": ActionHelp,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// reserved codes cannot be rebound.
var reserved = map[string]bool{
	"escape":     true,
	"ctrl_c":     true,
	"mouse_left": true,
}

// IsReserved reports whether code is fixed to its action.
func IsReserved(code string) bool {
	return reserved[code]
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionToggleDoor:
		return "Toggle Door"
	case ActionAddPower:
		return "Add Power"
	case ActionRemovePower:
		return "Remove Power"
	case ActionSelectNext:
		return "Next System"
	case ActionSelectPrev:
		return "Previous System"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

func (a Action) String() string {
	return ActionName(a)
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help text doesn't reshuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
