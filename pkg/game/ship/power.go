package ship

import (
	"starship/pkg/engine/errs"
	"starship/pkg/game/entities"
)

// AddSystemPower moves power from the reactor into a system and returns the
// units moved. Shields take power in pairs so every unit completes a layer.
// When nothing can be moved the state is left untouched and 0, nil is returned;
// only an unknown or missing system is an error.
func (s *Ship) AddSystemPower(name entities.SystemName) (int, error) {
	sys, err := s.powerTarget(name)
	if err != nil || sys == nil {
		return 0, err
	}
	log := s.log.With("component", "power", "system", name)

	if !sys.CanTakePower() {
		log.Debug("system is destroyed or ionized")
		return 0, nil
	}
	if sys.Headroom() == 0 {
		log.Debug("system power already maxed out")
		return 0, nil
	}

	need := 1
	if name == entities.Shields && sys.PowerCurrent%2 == 0 {
		if sys.Headroom() < 2 {
			log.Debug("shields need two assignable bars")
			return 0, nil
		}
		need = 2
	}

	fromBackup, ok := s.reactor.Draw(need)
	if !ok {
		log.Debug("not enough reactor power", "need", need, "available", s.reactor.PowerAvailable)
		return 0, nil
	}
	sys.PowerCurrent += need
	sys.PowerBackup += fromBackup
	log.Debug("power added", "units", need, "backup", fromBackup, "current", sys.PowerCurrent)
	if name == entities.DoorSystem {
		s.refreshDoorLevels()
	}
	return need, nil
}

// RemoveSystemPower returns power from a system to the reactor and returns
// the units moved. Shields drop to the next even level. Zoltan power stays put.
func (s *Ship) RemoveSystemPower(name entities.SystemName) (int, error) {
	sys, err := s.powerTarget(name)
	if err != nil || sys == nil {
		return 0, err
	}
	log := s.log.With("component", "power", "system", name)

	if !sys.CanTakePower() {
		log.Debug("system is destroyed or ionized")
		return 0, nil
	}
	if sys.PowerCurrent <= sys.PowerZoltans {
		log.Debug("system has no removable power")
		return 0, nil
	}

	n := 1
	if name == entities.Shields && sys.PowerCurrent%2 == 0 {
		n = min(sys.PowerCurrent-sys.PowerZoltans, 2)
	}
	// Reactor units go back first; upgrade power is simply lost.
	paid := min(n, max(0, sys.PowerCurrent-sys.PowerUnpaid))
	toBackup := min(sys.PowerBackup, paid)

	sys.PowerCurrent -= n
	sys.PowerUnpaid -= n - paid
	sys.PowerBackup -= toBackup
	s.reactor.Release(paid, toBackup)
	log.Debug("power removed", "units", n, "returned", paid, "backup", toBackup, "current", sys.PowerCurrent)
	if name == entities.DoorSystem {
		s.refreshDoorLevels()
	}
	return n, nil
}

// powerTarget resolves the system a power request is for. A nil system with a nil
// error means the request is valid but not handled for that system.
func (s *Ship) powerTarget(name entities.SystemName) (*entities.System, error) {
	sys, ok := s.systems[name]
	if !ok {
		return nil, errs.InvalidOperationf("system %v is not installed on %s", name, s.Name)
	}
	if name == entities.WeaponControl || name == entities.DroneControl {
		s.log.Warn("power change ignored", "system", name,
			"err", errs.Unsupportedf("weapon and drone power is assigned per item"))
		return nil, nil
	}
	return sys, nil
}
