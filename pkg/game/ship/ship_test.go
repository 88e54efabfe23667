package ship

import (
	"errors"
	"testing"

	"starship/pkg/engine/errs"
	"starship/pkg/game/config"
	"starship/pkg/game/entities"
)

func TestNew_KestrelA(t *testing.T) {
	def, err := config.Default().Ship("kestrel_a")
	if err != nil {
		t.Fatal(err)
	}
	s := buildShip(t, def)

	if got := len(s.Rooms()); got != 17 {
		t.Errorf("len(Rooms()) = %d, want 17", got)
	}
	if got := len(s.AllDoors()); got != 26 {
		t.Errorf("len(AllDoors()) = %d, want 26", got)
	}
	if got := len(s.AllConnections()); got != 22 {
		t.Errorf("len(AllConnections()) = %d, want 22", got)
	}
	if got := s.OpenConnections(); got != nil {
		t.Errorf("OpenConnections() = %v, want nil with every door shut", got)
	}
	if got := len(s.SpaceDoors()); got != 6 {
		t.Errorf("len(SpaceDoors()) = %d, want 6", got)
	}

	d, ok := s.Door("0_3_1_3")
	if !ok {
		t.Fatal("airlock door 0_3_1_3 missing")
	}
	if !d.IsSpaceDoor() || d.Room2 != 1 {
		t.Errorf("door 0_3_1_3 rooms = %d/%d, want space/1", d.Room1, d.Room2)
	}
	if d.Level != entities.DoorLevel1 {
		t.Errorf("door level = %v, want L1 from the door system", d.Level)
	}

	r := s.ReactorSnapshot()
	if r.SystemPower != 8 || r.PowerAvailable != 4 {
		t.Errorf("reactor = %d/%d, want 8 with 4 available", r.SystemPower, r.PowerAvailable)
	}
	if got := s.ShieldLayers(); got != 1 {
		t.Errorf("ShieldLayers() = %d, want 1", got)
	}

	room13, _ := s.Room(13)
	if room13.System != entities.Shields {
		t.Errorf("room 13 system = %v, want Shields", room13.System)
	}
	if got := s.DoorsOfRoom(1); len(got) != 4 {
		t.Errorf("DoorsOfRoom(1) = %v, want 4 doors", got)
	}
	if c, ok := s.RoomsOfDoor("0_3_1_3"); !ok || c != Connect(0, 1) {
		t.Errorf("RoomsOfDoor(0_3_1_3) = %v, %v", c, ok)
	}
}

func TestNew_RebelFighter(t *testing.T) {
	def, _ := config.Default().Ship("rebel_fighter")
	s := buildShip(t, def)

	if got := s.ReactorSnapshot().PowerAvailable; got != 0 {
		t.Errorf("PowerAvailable = %d, want 0 with piloting outside the reactor", got)
	}
	if d := s.AllDoors()[0]; d.Level != entities.DoorLevelNone {
		t.Errorf("door level = %v, want L0 without a door system", d.Level)
	}
	if got := s.HullPoints(); got != 11 {
		t.Errorf("HullPoints() = %d, want 11", got)
	}
}

func TestNew_RejectsOverpoweredSystems(t *testing.T) {
	def := twoRoomDef()
	def.ReactorPower = 2
	def.Systems = map[string]config.SystemDefinition{
		"Shields": {Room: 1, PowerMax: 4, PowerCurrent: 2},
		"Engines": {Room: 2, PowerMax: 2, PowerCurrent: 1},
	}
	_, err := New(def, testParams(), nil)
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("New() error = %v, want ErrConfiguration", err)
	}
}

func TestNew_RejectsBadDefinitions(t *testing.T) {
	cases := map[string]func(*config.ShipDefinition){
		"unknown system": func(d *config.ShipDefinition) {
			d.Systems = map[string]config.SystemDefinition{"Warp": {Room: 1}}
		},
		"system in missing room": func(d *config.ShipDefinition) {
			d.Systems = map[string]config.SystemDefinition{"Oxygen": {Room: 9, PowerMax: 1}}
		},
		"shared room": func(d *config.ShipDefinition) {
			d.Systems = map[string]config.SystemDefinition{
				"Oxygen":  {Room: 1, PowerMax: 1},
				"Engines": {Room: 1, PowerMax: 1},
			}
		},
		"current above max": func(d *config.ShipDefinition) {
			d.Systems = map[string]config.SystemDefinition{"Oxygen": {Room: 1, PowerMax: 1, PowerCurrent: 2}}
		},
		"door inside a room": func(d *config.ShipDefinition) {
			d.Layout = [][]int{{1, 1}}
		},
		"door index out of range": func(d *config.ShipDefinition) {
			d.DoorsVertical = [][]int{{}, {7}}
		},
		"l-shaped room": func(d *config.ShipDefinition) {
			d.Layout = [][]int{{1, 2}, {1, 1}}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			def := twoRoomDef()
			mutate(&def)
			if _, err := New(def, testParams(), nil); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("New() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestSubsystemsDoNotCountAgainstReactor(t *testing.T) {
	def := twoRoomDef()
	def.ReactorPower = 1
	def.Systems = map[string]config.SystemDefinition{
		"Oxygen":   {Room: 1, PowerMax: 1, PowerCurrent: 1},
		"Piloting": {Room: 2, PowerMax: 1, PowerCurrent: 1},
	}
	s := buildShip(t, def)
	if got := s.ReactorSnapshot().PowerAvailable; got != 0 {
		t.Errorf("PowerAvailable = %d, want 0", got)
	}
}

func TestSetManned_RefreshesDoorLevels(t *testing.T) {
	def := twoRoomDef()
	def.Systems = map[string]config.SystemDefinition{
		"DoorSystem": {Room: 1, PowerMax: 2, PowerCurrent: 2},
	}
	s := buildShip(t, def)
	d := s.AllDoors()[0]
	if d.Level != entities.DoorLevel2 {
		t.Fatalf("initial door level = %v, want L2", d.Level)
	}

	if err := s.SetManned(entities.DoorSystem, 1); err != nil {
		t.Fatal(err)
	}
	if d.Level != entities.DoorLevel3 {
		t.Errorf("door level after manning = %v, want L3", d.Level)
	}
	if err := s.SetManned(entities.Cloaking, 1); !errors.Is(err, errs.ErrInvalidOperation) {
		t.Errorf("SetManned(Cloaking) error = %v, want ErrInvalidOperation", err)
	}
}

func TestFields_BlocksMedbayTile(t *testing.T) {
	def, _ := config.Default().Ship("kestrel_a")
	s := buildShip(t, def)

	var medbay []Field
	total := 0
	for _, f := range s.Fields() {
		total++
		if f.Room == 12 {
			medbay = append(medbay, f)
		}
	}
	if total != 48 {
		t.Errorf("len(Fields()) = %d, want 48 room tiles", total)
	}
	if len(medbay) != 4 {
		t.Fatalf("medbay fields = %d, want 4", len(medbay))
	}
	for _, f := range medbay {
		wantAvailable := !(f.X == 10 && f.Y == 2)
		if f.Available != wantAvailable {
			t.Errorf("medbay field (%d,%d) available = %v, want %v", f.X, f.Y, f.Available, wantAvailable)
		}
	}
}

func TestDamageToRoom(t *testing.T) {
	def := twoRoomDef()
	def.Systems = map[string]config.SystemDefinition{"Oxygen": {Room: 2, PowerMax: 1}}
	s := buildShip(t, def)

	if err := s.DamageToRoom(1, 0, 3); err != nil {
		t.Errorf("DamageToRoom(1) = %v, want nil", err)
	}
	if got := s.HullPoints(); got != 7 {
		t.Errorf("HullPoints() = %d, want 7", got)
	}

	err := s.DamageToRoom(2, 1, 8)
	if !errors.Is(err, errs.ErrUnsupported) {
		t.Errorf("DamageToRoom(system room) = %v, want ErrUnsupported", err)
	}
	if got := s.HullPoints(); got != -1 {
		t.Errorf("HullPoints() = %d, want -1", got)
	}

	if err := s.DamageToRoom(42, 0, 1); !errors.Is(err, errs.ErrInvalidOperation) {
		t.Errorf("DamageToRoom(42) = %v, want ErrInvalidOperation", err)
	}
}
