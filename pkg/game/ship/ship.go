// Package ship assembles rooms, doors, systems and the reactor from a ship
// definition and runs the per-tick simulation on them.
package ship

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"starship/pkg/engine/errs"
	"starship/pkg/engine/world"
	"starship/pkg/game/config"
	"starship/pkg/game/entities"
)

// Ship is the aggregate the game loop and the renderers work on.
// It is not safe for concurrent use.
type Ship struct {
	Name string

	log    *slog.Logger
	params config.General

	grid            *world.Grid
	doorsVertical   world.DoorMatrix
	doorsHorizontal world.DoorMatrix
	footprints      map[int]world.Footprint

	rooms   map[int]*entities.Room
	roomIDs []int

	doors      map[string]*entities.Door
	doorKeys   []string
	animations map[string]*entities.DoorAnimation

	systems map[entities.SystemName]*entities.System
	reactor *entities.Reactor

	allConnections  []Connection
	openConnections []Connection
	roomDoors       map[int]mapset.Set[string]
	doorRooms       map[string]Connection
	spaceDoors      mapset.Set[string]

	fields      []Field
	hullPoints  int
	weaponSlots int
}

// New builds a ship from its definition. Setup runs in a fixed order: layout,
// door matrices, systems and reactor, rooms, doors and their animations,
// connectivity, then the room and door indexes and crew fields.
func New(def config.ShipDefinition, params config.General, log *slog.Logger) (*Ship, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Ship{
		Name:        def.Name,
		log:         log.With("ship", def.Name),
		params:      params,
		hullPoints:  def.HullPoints,
		weaponSlots: def.WeaponSlots,
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"expand layout", func() error { return s.expandLayout(def) }},
		{"door matrices", func() error { return s.createDoorMatrices(def) }},
		{"systems", func() error { return s.setupSystems(def) }},
		{"rooms", s.createRooms},
		{"doors", s.createDoors},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("ship %q: %s: %w", def.Name, step.name, err)
		}
	}

	s.allConnections = AllConnections(s.doors)
	s.openConnections = OpenConnections(s.doors)
	s.indexDoorRooms()
	s.createFields(def.Clonebay)

	s.log.Info("ship ready",
		"rooms", len(s.rooms),
		"doors", len(s.doors),
		"systems", len(s.systems),
		"reactor", s.reactor.SystemPower,
	)
	return s, nil
}

func (s *Ship) expandLayout(def config.ShipDefinition) error {
	g, err := world.ExpandLayout(def.Layout)
	if err != nil {
		return err
	}
	fp, err := world.Footprints(g)
	if err != nil {
		return err
	}
	s.grid = g
	s.footprints = fp
	s.roomIDs = g.RoomIDs()
	return nil
}

func (s *Ship) createDoorMatrices(def config.ShipDefinition) error {
	v, err := world.DoorMatrixVertical(s.grid, def.DoorsVertical)
	if err != nil {
		return err
	}
	h, err := world.DoorMatrixHorizontal(s.grid, def.DoorsHorizontal)
	if err != nil {
		return err
	}
	s.doorsVertical, s.doorsHorizontal = v, h
	return nil
}

// setupSystems installs the systems and charges the reactor with the initial
// power of the main systems. Subsystems start on their own upgrade power and
// draw from the reactor only for units added later.
func (s *Ship) setupSystems(def config.ShipDefinition) error {
	s.systems = make(map[entities.SystemName]*entities.System, len(def.Systems))
	usedRooms := make(map[int]entities.SystemName)

	names := make([]string, 0, len(def.Systems))
	for name := range def.Systems {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, raw := range names {
		sd := def.Systems[raw]
		name, ok := entities.ParseSystemName(raw)
		if !ok {
			return errs.Configurationf("unknown system %q", raw)
		}
		if _, ok := s.footprints[sd.Room]; !ok {
			return errs.Configurationf("system %v placed in missing room %d", name, sd.Room)
		}
		if other, taken := usedRooms[sd.Room]; taken {
			return errs.Configurationf("systems %v and %v share room %d", other, name, sd.Room)
		}
		if sd.PowerMax < 0 || sd.PowerCurrent < 0 || sd.PowerCurrent > sd.PowerMax {
			return errs.Configurationf("system %v power %d/%d out of range", name, sd.PowerCurrent, sd.PowerMax)
		}
		usedRooms[sd.Room] = name
		sys := entities.NewSystem(name, sd.Room, sd.PowerMax, sd.PowerCurrent, sd.Manned)
		if name.IsSubsystem() {
			sys.PowerUnpaid = sd.PowerCurrent
		}
		s.systems[name] = sys
	}

	s.reactor = entities.NewReactor(def.ReactorPower, def.BackupPower)
	for _, sys := range s.systems {
		if sys.Name.IsMain() {
			s.reactor.PowerAvailable -= sys.PowerCurrent
		}
	}
	if s.reactor.PowerAvailable < 0 {
		return errs.Configurationf("initial system power exceeds reactor power %d by %d",
			def.ReactorPower+def.BackupPower, -s.reactor.PowerAvailable)
	}
	if s.reactor.PowerAvailable < s.reactor.BackupPowerAvailable {
		// Initial allocations come out of normal power; backup stays untouched.
		return errs.Configurationf("initial system power %d exceeds normal reactor power %d",
			def.ReactorPower+def.BackupPower-s.reactor.PowerAvailable, def.ReactorPower)
	}
	return nil
}

func (s *Ship) createRooms() error {
	roomSystem := make(map[int]entities.SystemName, len(s.systems))
	for _, sys := range s.systems {
		roomSystem[sys.RoomKey] = sys.Name
	}

	s.rooms = make(map[int]*entities.Room, len(s.roomIDs))
	for _, id := range s.roomIDs {
		s.rooms[id] = entities.NewRoom(id, s.footprints[id], roomSystem[id])
	}
	return nil
}

func (s *Ship) createDoors() error {
	level := s.doorLevel()
	maxPosition := s.params.MaxDoorRetraction()

	s.doors = make(map[string]*entities.Door)
	s.animations = make(map[string]*entities.DoorAnimation)
	for _, b := range world.Boundaries(s.grid, s.doorsVertical, s.doorsHorizontal) {
		key := entities.DoorKey(b.First, b.Second)
		if b.First.Room == b.Second.Room {
			return errs.Configurationf("door %s does not separate two rooms (both sides %d)", key, b.First.Room)
		}
		d := entities.NewDoor(key, b.Orientation, b.First.Room, b.Second.Room, level, maxPosition)
		s.doors[key] = d
		s.animations[key] = entities.NewDoorAnimation(d, s.params.DoorTimePerPixelMs)
		s.doorKeys = append(s.doorKeys, key)
	}
	sort.Strings(s.doorKeys)
	return nil
}

// doorLevel derives the door upgrade level from the door system.
func (s *Ship) doorLevel() entities.DoorLevel {
	sys, ok := s.systems[entities.DoorSystem]
	if !ok {
		return entities.DoorLevelNone
	}
	lvl := sys.PowerCurrent + sys.Manned
	return entities.DoorLevel(max(0, min(lvl, s.params.DoorLevelMax)))
}

func (s *Ship) refreshDoorLevels() {
	level := s.doorLevel()
	for _, d := range s.doors {
		d.Level = level
	}
	s.log.Debug("door levels refreshed", "level", level)
}

// Grid returns the expanded layout.
func (s *Ship) Grid() *world.Grid {
	return s.grid
}

// DoorMatrices returns the vertical and horizontal door matrices.
func (s *Ship) DoorMatrices() (vertical, horizontal world.DoorMatrix) {
	return s.doorsVertical, s.doorsHorizontal
}

// Room returns a room by id.
func (s *Ship) Room(id int) (*entities.Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

// RoomIDs lists the room ids in ascending order.
func (s *Ship) RoomIDs() []int {
	return append([]int(nil), s.roomIDs...)
}

// Rooms returns the rooms ordered by id.
func (s *Ship) Rooms() []*entities.Room {
	out := make([]*entities.Room, 0, len(s.roomIDs))
	for _, id := range s.roomIDs {
		out = append(out, s.rooms[id])
	}
	return out
}

// Door returns a door by key.
func (s *Ship) Door(key string) (*entities.Door, bool) {
	d, ok := s.doors[key]
	return d, ok
}

// AllDoors returns the doors ordered by key.
func (s *Ship) AllDoors() []*entities.Door {
	out := make([]*entities.Door, 0, len(s.doorKeys))
	for _, k := range s.doorKeys {
		out = append(out, s.doors[k])
	}
	return out
}

// DoorState returns the display state of a door.
func (s *Ship) DoorState(key string) (entities.DoorState, bool) {
	a, ok := s.animations[key]
	if !ok {
		return entities.DoorClosed, false
	}
	return a.State(), true
}

// HasSystem reports whether the ship has the system installed.
func (s *Ship) HasSystem(name entities.SystemName) bool {
	_, ok := s.systems[name]
	return ok
}

// SystemNames lists the installed systems in display order.
func (s *Ship) SystemNames() []entities.SystemName {
	var out []entities.SystemName
	for _, n := range entities.AllSystems() {
		if _, ok := s.systems[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// SystemSnapshot returns a copy of an installed system.
func (s *Ship) SystemSnapshot(name entities.SystemName) (entities.SystemState, error) {
	sys, ok := s.systems[name]
	if !ok {
		return entities.SystemState{}, errs.InvalidOperationf("system %v is not installed on %s", name, s.Name)
	}
	return sys.Snapshot(), nil
}

// ReactorSnapshot returns a copy of the reactor.
func (s *Ship) ReactorSnapshot() entities.ReactorState {
	return s.reactor.Snapshot()
}

// ShieldLayers is the number of shield bubbles the current shield power supports.
func (s *Ship) ShieldLayers() int {
	sys, ok := s.systems[entities.Shields]
	if !ok {
		return 0
	}
	return min(sys.PowerCurrent, s.params.ShieldMaxLevel) / 2
}

// HullPoints returns the remaining hull.
func (s *Ship) HullPoints() int {
	return s.hullPoints
}

// WeaponSlots returns the number of weapon mounts.
func (s *Ship) WeaponSlots() int {
	return s.weaponSlots
}

// SetManned records how many crew man a system. Manning the door system
// upgrades every door.
func (s *Ship) SetManned(name entities.SystemName, crew int) error {
	sys, ok := s.systems[name]
	if !ok {
		return errs.InvalidOperationf("system %v is not installed on %s", name, s.Name)
	}
	sys.Manned = max(0, crew)
	if name == entities.DoorSystem {
		s.refreshDoorLevels()
	}
	return nil
}
