package ship

import (
	"starship/pkg/engine/errs"
)

// ToggleDoor starts or reverses a door. It returns false when a manual toggle is
// refused because the door is hacked or bashed.
func (s *Ship) ToggleDoor(key string, manual bool) (bool, error) {
	a, ok := s.animations[key]
	if !ok {
		return false, errs.InvalidOperationf("door %s does not exist on %s", key, s.Name)
	}
	if !a.Toggle(manual) {
		s.log.Debug("door refused toggle", "component", "door", "door", key)
		return false, nil
	}
	s.log.Debug("door toggled", "component", "door", "door", key, "direction", a.Direction())
	return true, nil
}

// AdvanceDoors runs every door animation forward by dt milliseconds and returns
// the keys of the doors that moved, sorted. The open connections are refreshed
// when any door moved.
func (s *Ship) AdvanceDoors(dt int) []string {
	var moved []string
	for _, key := range s.doorKeys {
		if s.animations[key].Advance(dt) {
			moved = append(moved, key)
		}
	}
	if len(moved) > 0 {
		s.refreshOpenConnections()
	}
	return moved
}

// DoorsMoving reports whether any door animation is still running.
func (s *Ship) DoorsMoving() bool {
	for _, a := range s.animations {
		if a.Running() {
			return true
		}
	}
	return false
}
