package gameplay

import (
	"starship/pkg/game/entities"
	"starship/pkg/game/ship"
	"starship/pkg/game/state"
)

// Step advances the simulation by dt milliseconds. It applies every queued
// intent, then moves the doors of each ship (refreshing which rooms are openly
// connected), then updates oxygen on each ship. While paused only the intents
// are applied.
func Step(g *state.Game, dt int) Frame {
	var f Frame
	level := doorLevel(g.Player)
	for {
		intent, ok := g.Intents.Dequeue()
		if !ok {
			break
		}
		if ProcessIntent(g, intent) {
			f.EnergyChanged = true
		}
	}

	if doorLevel(g.Player) != level {
		f.Doors = DoorViews(g.Player, doorKeys(g.Player))
	}

	f.Paused = g.Paused
	if g.Paused || dt < 0 {
		return f
	}
	g.ElapsedMs += dt

	for _, s := range g.Ships() {
		moved := s.AdvanceDoors(dt)
		changed := s.UpdateOxygen(dt)
		if s != g.Player {
			continue
		}
		f = f.Merge(Frame{Doors: DoorViews(s, moved), Rooms: RoomViews(s, changed)})
	}
	return f
}

// doorLevel is the level shared by every door of s.
func doorLevel(s *ship.Ship) entities.DoorLevel {
	for _, d := range s.AllDoors() {
		return d.Level
	}
	return entities.DoorLevelNone
}
