package ship

import (
	"starship/pkg/engine/world"
	"starship/pkg/game/entities"
)

// UpdateOxygen advances room oxygen by dt milliseconds and returns the ids of the
// rooms whose display step changed, ascending.
//
// Every room is computed from the levels at the start of the tick, so the order
// rooms are visited in does not matter. A room gains the oxygen system's output,
// loses a constant leak, moves towards each openly connected room by a capped
// gradient, and bleeds heavily into space through any open space door.
func (s *Ship) UpdateOxygen(dt int) []int {
	p := s.params
	step := float64(dt) / 1000

	old := make(map[int]float64, len(s.rooms))
	for id, r := range s.rooms {
		old[id] = r.Oxygen()
	}

	refill := float64(s.oxygenPower())*p.OxygenRefillPerPower - p.OxygenLossGeneral

	next := make(map[int]float64, len(s.rooms))
	for _, id := range s.roomIDs {
		v := old[id] + refill*step
		// Each open neighbour counts once, however many open doors lead to it.
		for _, c := range s.openConnections {
			if !c.Has(id) {
				continue
			}
			n := c.Other(id)
			if n == world.Space {
				v -= p.OxygenLossSpace * step
				continue
			}
			gradient := max(-p.OxygenGradientCap, min(p.OxygenGradientFactor*(old[n]-old[id]), p.OxygenGradientCap))
			v += gradient * p.OxygenEquilibriumSpeed * step
		}
		next[id] = v
	}

	var changed []int
	for _, id := range s.roomIDs {
		if s.rooms[id].SetOxygen(next[id]) {
			changed = append(changed, id)
		}
	}
	return changed
}

func (s *Ship) oxygenPower() int {
	if sys, ok := s.systems[entities.Oxygen]; ok {
		return sys.PowerCurrent
	}
	return 0
}
