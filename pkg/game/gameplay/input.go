// Package gameplay drives the ships: it applies player intents and steps the
// door, connectivity and oxygen simulation once per frame.
package gameplay

import (
	"fmt"

	"starship/pkg/engine/errs"
	engineinput "starship/pkg/engine/input"
	"starship/pkg/game/entities"
	"starship/pkg/game/locale"
	"starship/pkg/game/ship"
	"starship/pkg/game/state"
)

// ProcessIntent applies one intent to the player ship and reports whether any
// system or reactor power changed.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionToggleDoor:
		ok, err := g.Player.ToggleDoor(intent.Target, true)
		if err != nil {
			logMessage(g, "COMMAND_FAILED", err)
		} else if !ok {
			logMessage(g, "DOOR_SEALED", intent.Target)
		}
		return false

	case engineinput.ActionAddPower, engineinput.ActionRemovePower:
		return changePower(g, intent)

	case engineinput.ActionSelectNext:
		selectSystem(g, 1)
		return false

	case engineinput.ActionSelectPrev:
		selectSystem(g, -1)
		return false

	case engineinput.ActionPause:
		g.Paused = !g.Paused
		if g.Paused {
			logMessage(g, "PAUSED")
		} else {
			logMessage(g, "RESUMED")
		}
		return false

	case engineinput.ActionHelp:
		logMessage(g, "HELP")
		return false

	case engineinput.ActionQuit:
		g.Quit = true
		logMessage(g, "GOODBYE")
		return false
	}

	logMessage(g, "COMMAND_FAILED", errs.Unsupportedf("action %v", intent.Action))
	return false
}

func changePower(g *state.Game, intent engineinput.Intent) bool {
	name, err := resolveSystem(g, intent.Target)
	if err != nil {
		logMessage(g, "COMMAND_FAILED", err)
		return false
	}

	var n int
	if intent.Action == engineinput.ActionAddPower {
		n, err = g.Player.AddSystemPower(name)
	} else {
		n, err = g.Player.RemoveSystemPower(name)
	}
	if err != nil {
		logMessage(g, "COMMAND_FAILED", err)
		return false
	}

	sys, err := g.Player.SystemSnapshot(name)
	if err != nil {
		logMessage(g, "COMMAND_FAILED", err)
		return false
	}
	if n == 0 {
		logMessage(g, "POWER_UNCHANGED", name, sys.PowerCurrent)
		return false
	}
	logMessage(g, "POWER_CHANGED", name, sys.PowerCurrent, sys.PowerMax)
	return true
}

// resolveSystem maps an intent target to a system, falling back to the
// selected one when the target is empty.
func resolveSystem(g *state.Game, target string) (entities.SystemName, error) {
	if target == "" {
		return SelectedSystem(g)
	}
	name, ok := entities.ParseSystemName(target)
	if !ok {
		return entities.NoSystem, errs.InvalidOperationf("unknown system %q", target)
	}
	return name, nil
}

// SelectedSystem returns the player system the selection cursor is on.
func SelectedSystem(g *state.Game) (entities.SystemName, error) {
	names := g.Player.SystemNames()
	if len(names) == 0 {
		return entities.NoSystem, errs.InvalidOperationf("%s", locale.Get("NO_SYSTEMS"))
	}
	return names[wrap(g.Selected, len(names))], nil
}

func selectSystem(g *state.Game, delta int) {
	names := g.Player.SystemNames()
	if len(names) == 0 {
		logMessage(g, "NO_SYSTEMS")
		return
	}
	g.Selected = wrap(g.Selected+delta, len(names))
	logMessage(g, "SELECTED_SYSTEM", names[g.Selected])
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// logMessage adds a translated message to the game's message log.
func logMessage(g *state.Game, key string, a ...any) {
	msg := locale.Get(key)
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	g.AddMessage(msg)
}

// ParseContext lists the system names and door keys of s for the command parser.
func ParseContext(s *ship.Ship) engineinput.ParseContext {
	var pctx engineinput.ParseContext
	for _, name := range s.SystemNames() {
		pctx.Systems = append(pctx.Systems, name.String())
	}
	for _, d := range s.AllDoors() {
		pctx.Doors = append(pctx.Doors, d.Key)
	}
	return pctx
}
