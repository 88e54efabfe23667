package ebiten

import (
	"fmt"

	"starship/pkg/game/gameplay"
	"starship/pkg/game/locale"
	"starship/pkg/game/renderer"
	"starship/pkg/game/state"
)

// RenderFrame folds a step's changes into the snapshot the next Draw uses.
func (e *EbitenRenderer) RenderFrame(g *state.Game, f gameplay.Frame) {
	s := &e.snapshot
	if !s.valid {
		e.resetSnapshot(g)
		f = gameplay.Snapshot(g.Player).Merge(f)
	}

	for _, r := range f.Rooms {
		s.rooms[r.ID] = r
	}
	for _, d := range f.Doors {
		s.doors[d.Key] = d
	}
	if f.EnergyChanged || s.selected != g.Selected {
		s.selected = g.Selected
		e.refreshEnergy(g)
	}

	s.hull = g.Player.HullPoints()
	s.shields = g.Player.ShieldLayers()
	if g.Enemy != nil {
		s.enemy = fmt.Sprintf("%s  %s %d  %s %d", g.Enemy.Name,
			locale.Get("LABEL_HULL"), g.Enemy.HullPoints(), locale.Get("LABEL_SHIELDS"), g.Enemy.ShieldLayers())
	}
	s.messages = append(s.messages[:0], g.Messages...)
	s.paused = g.Paused
	if e.loop != nil {
		s.fps = e.loop.FPS()
	}
}

func (e *EbitenRenderer) resetSnapshot(g *state.Game) {
	labels := make(map[int]string)
	for _, r := range g.Player.Rooms() {
		if r.HasSystem() {
			name := r.System.String()
			labels[r.ID] = name[:min(3, len(name))]
		}
	}
	e.snapshot = renderSnapshot{
		valid:      true,
		title:      g.Player.Name,
		rooms:      make(map[int]gameplay.RoomView),
		doors:      make(map[string]gameplay.DoorView),
		roomLabels: labels,
		maxRetract: g.Config.General.MaxDoorRetraction(),
		minOxygen:  float64(g.Config.General.OxygenMinimumPercent),
		selected:   g.Selected,
	}
	e.refreshEnergy(g)
}

func (e *EbitenRenderer) refreshEnergy(g *state.Game) {
	s := &e.snapshot
	selected, _ := gameplay.SelectedSystem(g)
	s.systems = s.systems[:0]
	for _, name := range g.Player.SystemNames() {
		sys, err := g.Player.SystemSnapshot(name)
		if err != nil {
			continue
		}
		s.systems = append(s.systems, systemRow{
			Name:     name,
			Symbol:   sys.Symbol(),
			Bars:     sys.Bars(),
			Selected: name == selected,
		})
	}
	s.reactor = renderer.ReactorBars(g.Player.ReactorSnapshot())
}
