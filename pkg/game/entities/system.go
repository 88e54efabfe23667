package entities

import "strings"

// SystemName identifies a ship system.
type SystemName int

const (
	NoSystem SystemName = iota
	Shields
	Engines
	Oxygen
	WeaponControl
	DroneControl
	Medbay
	CrewTeleporter
	Cloaking
	Artillery
	Clonebay
	MindControl
	Hacking
	Piloting
	Sensors
	DoorSystem
	BackupBattery
)

var systemNames = map[SystemName]string{
	Shields:        "Shields",
	Engines:        "Engines",
	Oxygen:         "Oxygen",
	WeaponControl:  "WeaponControl",
	DroneControl:   "DroneControl",
	Medbay:         "Medbay",
	CrewTeleporter: "CrewTeleporter",
	Cloaking:       "Cloaking",
	Artillery:      "Artillery",
	Clonebay:       "Clonebay",
	MindControl:    "MindControl",
	Hacking:        "Hacking",
	Piloting:       "Piloting",
	Sensors:        "Sensors",
	DoorSystem:     "DoorSystem",
	BackupBattery:  "BackupBattery",
}

func (n SystemName) String() string {
	if s, ok := systemNames[n]; ok {
		return s
	}
	return "None"
}

// AllSystems returns every system in display order, main systems first.
func AllSystems() []SystemName {
	return []SystemName{
		Shields, Engines, Oxygen, WeaponControl, DroneControl, Medbay, CrewTeleporter, Cloaking,
		Artillery, Clonebay, MindControl, Hacking, Piloting, Sensors, DoorSystem, BackupBattery,
	}
}

// IsMain reports whether the system's starting power is charged to the reactor.
func (n SystemName) IsMain() bool {
	return n >= Shields && n <= Hacking
}

// IsSubsystem reports whether the system starts on its own upgrade power.
func (n SystemName) IsSubsystem() bool {
	return n >= Piloting && n <= BackupBattery
}

// ParseSystemName resolves a system by name, ignoring case.
func ParseSystemName(s string) (SystemName, bool) {
	for n, name := range systemNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return n, true
		}
	}
	return NoSystem, false
}

// System is an installed ship system and its power bookkeeping.
type System struct {
	Name    SystemName
	RoomKey int

	PowerMax      int
	PowerCurrent  int
	PowerBlocked  int
	PowerCooldown int
	PowerBackup   int
	PowerZoltans  int
	// PowerUnpaid is the part of PowerCurrent the reactor never supplied:
	// the upgrade power a subsystem starts with.
	PowerUnpaid int

	IonCharges int
	Damaged    int
	Destroyed  bool
	Hacked     bool
	Manned     int
}

// NewSystem installs a system at its initial power.
func NewSystem(name SystemName, room, powerMax, powerCurrent, manned int) *System {
	return &System{
		Name:         name,
		RoomKey:      room,
		PowerMax:     powerMax,
		PowerCurrent: powerCurrent,
		Manned:       manned,
	}
}

// Headroom is how many more units the system can take before hitting its damaged cap.
func (s *System) Headroom() int {
	return max(0, s.PowerMax-s.Damaged-s.PowerCurrent)
}

// CanTakePower reports whether the system is in a state to accept power at all.
func (s *System) CanTakePower() bool {
	return !s.Destroyed && s.IonCharges == 0
}

// Snapshot copies the system for readers outside the ship.
func (s *System) Snapshot() SystemState {
	return SystemState(*s)
}

// SystemState is a read-only copy of a System.
type SystemState System

// Symbol is the colour of a system's icon in the energy display.
type Symbol int

const (
	SymbolUnpowered Symbol = iota
	SymbolPowered
	SymbolDamaged
	SymbolDestroyed
	SymbolIonized
)

func (s Symbol) String() string {
	return [...]string{"unpowered", "powered", "damaged", "destroyed", "ionized"}[s]
}

// Symbol picks the icon colour: ionized wins over destroyed, then damaged, then powered.
func (s SystemState) Symbol() Symbol {
	switch {
	case s.IonCharges > 0:
		return SymbolIonized
	case s.Destroyed:
		return SymbolDestroyed
	case s.Damaged > 0:
		return SymbolDamaged
	case s.PowerCurrent > 0:
		return SymbolPowered
	default:
		return SymbolUnpowered
	}
}

// Bar is one power bar of a system in the energy display.
type Bar int

const (
	BarReactor Bar = iota
	BarBackup
	BarZoltan
	BarCooldown
	BarIonized
	BarUnassigned
	BarDamaged
	BarBlocked
)

func (b Bar) String() string {
	return [...]string{"reactor", "backup", "zoltan", "cooldown", "ionized", "unassigned", "damaged", "blocked"}[b]
}

// Bars lists the bars of the system bottom to top: the powered bars first, then the
// empty ones with blocked and damaged bars at the top.
func (s SystemState) Bars() []Bar {
	cooldown, zoltans, backup := s.PowerCooldown, s.PowerZoltans, s.PowerBackup
	bars := make([]Bar, 0, s.PowerMax)
	for i := 0; i < s.PowerCurrent; i++ {
		switch {
		case cooldown > 0:
			bars = append(bars, BarCooldown)
			cooldown--
		case zoltans > 0:
			bars = append(bars, BarZoltan)
			zoltans--
		case s.IonCharges > 0:
			bars = append(bars, BarIonized)
		case backup == 0:
			bars = append(bars, BarReactor)
		default:
			bars = append(bars, BarBackup)
			backup--
		}
	}

	blocked, damaged := s.PowerBlocked, s.Damaged
	empty := make([]Bar, 0, s.PowerMax-s.PowerCurrent)
	for i := s.PowerCurrent; i < s.PowerMax; i++ {
		switch {
		case blocked > 0:
			empty = append(empty, BarBlocked)
			blocked--
		case damaged > 0:
			empty = append(empty, BarDamaged)
			damaged--
		default:
			empty = append(empty, BarUnassigned)
		}
	}
	for i := len(empty) - 1; i >= 0; i-- {
		bars = append(bars, empty[i])
	}
	return bars
}
