// Package menu lists and rebinds the key bindings of the ship controls.
package menu

import (
	"fmt"
	"strings"

	"starship/pkg/engine/errs"
	engineinput "starship/pkg/engine/input"
)

// BindingItem is one line of the bindings list.
type BindingItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// Label returns the action name and its bound codes.
func (b BindingItem) Label() string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", name, codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

var actions = []engineinput.Action{
	engineinput.ActionToggleDoor,
	engineinput.ActionAddPower,
	engineinput.ActionRemovePower,
	engineinput.ActionSelectNext,
	engineinput.ActionSelectPrev,
	engineinput.ActionPause,
	engineinput.ActionHelp,
	engineinput.ActionQuit,
}

// BindingItems returns every player action in display order.
func BindingItems() []BindingItem {
	items := make([]BindingItem, len(actions))
	for i, act := range actions {
		items[i] = BindingItem{Action: act, NonRebindable: isNonRebindable(act)}
	}
	return items
}

// Labels renders BindingItems, one label per line.
func Labels() []string {
	items := BindingItems()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}

// Rebind applies an "action=code" assignment, e.g. "pause=z" or
// "add power=a". The action name ignores case, spaces and underscores.
func Rebind(assignment string) (string, error) {
	name, code, ok := strings.Cut(assignment, "=")
	code = strings.TrimSpace(code)
	if !ok || code == "" {
		return "", errs.InvalidOperationf("binding %q is not action=code", assignment)
	}

	action, ok := actionByName(name)
	if !ok {
		return "", errs.InvalidOperationf("unknown action %q", strings.TrimSpace(name))
	}
	if isNonRebindable(action) {
		return "", errs.InvalidOperationf("%s cannot be rebound", engineinput.ActionName(action))
	}

	if engineinput.IsReserved(code) {
		return "", errs.InvalidOperationf("code %q is reserved", code)
	}

	engineinput.SetSingleBinding(action, code)
	return fmt.Sprintf("Set binding for %s to %s", engineinput.ActionName(action), code), nil
}

func actionByName(name string) (engineinput.Action, bool) {
	want := normalize(name)
	for _, act := range actions {
		if normalize(engineinput.ActionName(act)) == want {
			return act, true
		}
	}
	return engineinput.ActionNone, false
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// isNonRebindable checks if an action cannot be rebound. Doors are toggled by
// command or mouse click, never by a single key.
func isNonRebindable(action engineinput.Action) bool {
	return action == engineinput.ActionToggleDoor
}
