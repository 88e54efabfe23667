package ship

import (
	"starship/pkg/engine/errs"
)

// DamageToRoom applies a hit to a room. Hull damage always lands; damage to a
// room with a system is not modelled and reports ErrUnsupported after the hull
// has been reduced.
func (s *Ship) DamageToRoom(room, systemDamage, hullDamage int) error {
	r, ok := s.rooms[room]
	if !ok {
		return errs.InvalidOperationf("room %d does not exist on %s", room, s.Name)
	}
	s.log.Info("damage applied",
		"room", room,
		"system", r.System,
		"system_damage", systemDamage,
		"hull_damage", hullDamage,
	)

	s.hullPoints -= hullDamage
	if s.hullPoints <= 0 {
		s.log.Warn("hull breached through", "hull", s.hullPoints,
			"err", errs.Unsupportedf("ship destruction"))
	}

	if r.HasSystem() {
		return errs.Unsupportedf("damage to system %v in room %d", r.System, room)
	}
	return nil
}
