package ship

import (
	"errors"
	"testing"

	"starship/pkg/engine/errs"
	"starship/pkg/game/config"
	"starship/pkg/game/entities"
)

func powerShip(t *testing.T, reactor, backup int, systems map[string]config.SystemDefinition) *Ship {
	t.Helper()
	def := config.ShipDefinition{
		Name:         "bench",
		ReactorPower: reactor,
		BackupPower:  backup,
		Layout:       [][]int{{1, 2, 3}},
		Systems:      systems,
	}
	return buildShip(t, def)
}

func TestAddSystemPower_OneUnit(t *testing.T) {
	s := powerShip(t, 4, 0, map[string]config.SystemDefinition{
		"Engines": {Room: 1, PowerMax: 3, PowerCurrent: 1},
	})

	n, err := s.AddSystemPower(entities.Engines)
	if err != nil || n != 1 {
		t.Fatalf("AddSystemPower(Engines) = %d, %v, want 1, nil", n, err)
	}
	sys, _ := s.SystemSnapshot(entities.Engines)
	if sys.PowerCurrent != 2 {
		t.Errorf("PowerCurrent = %d, want 2", sys.PowerCurrent)
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 2 {
		t.Errorf("PowerAvailable = %d, want 2", got)
	}
}

func TestAddSystemPower_NothingToGive(t *testing.T) {
	cases := []struct {
		name    string
		reactor int
		sys     config.SystemDefinition
		mutate  func(*entities.System)
	}{
		{"maxed out", 5, config.SystemDefinition{Room: 1, PowerMax: 2, PowerCurrent: 2}, nil},
		{"reactor empty", 1, config.SystemDefinition{Room: 1, PowerMax: 2, PowerCurrent: 1}, nil},
		{"ionized", 5, config.SystemDefinition{Room: 1, PowerMax: 2}, func(s *entities.System) { s.IonCharges = 1 }},
		{"destroyed", 5, config.SystemDefinition{Room: 1, PowerMax: 2}, func(s *entities.System) { s.Destroyed = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := powerShip(t, tc.reactor, 0, map[string]config.SystemDefinition{"Engines": tc.sys})
			if tc.mutate != nil {
				tc.mutate(s.systems[entities.Engines])
			}
			before := s.ReactorSnapshot()

			n, err := s.AddSystemPower(entities.Engines)
			if err != nil || n != 0 {
				t.Errorf("AddSystemPower() = %d, %v, want 0, nil", n, err)
			}
			if after := s.ReactorSnapshot(); after != before {
				t.Errorf("reactor changed: %+v -> %+v", before, after)
			}
		})
	}
}

func TestAddSystemPower_ShieldsInPairs(t *testing.T) {
	tests := []struct {
		current int
		max     int
		want    int
	}{
		{current: 0, max: 4, want: 2},
		{current: 2, max: 4, want: 2},
		{current: 3, max: 4, want: 1},
		{current: 4, max: 5, want: 0},
		{current: 4, max: 4, want: 0},
	}
	for _, tt := range tests {
		s := powerShip(t, 8, 0, map[string]config.SystemDefinition{
			"Shields": {Room: 1, PowerMax: tt.max, PowerCurrent: tt.current},
		})
		n, err := s.AddSystemPower(entities.Shields)
		if err != nil || n != tt.want {
			t.Errorf("AddSystemPower(Shields %d/%d) = %d, %v, want %d", tt.current, tt.max, n, err, tt.want)
		}
	}
}

func TestAddSystemPower_ShieldsNeedTwoFreeUnits(t *testing.T) {
	s := powerShip(t, 3, 0, map[string]config.SystemDefinition{
		"Shields": {Room: 1, PowerMax: 4, PowerCurrent: 2},
	})
	if n, _ := s.AddSystemPower(entities.Shields); n != 0 {
		t.Errorf("AddSystemPower(Shields) with one free unit = %d, want 0", n)
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 1 {
		t.Errorf("PowerAvailable = %d, want 1", got)
	}
}

func TestRemoveSystemPower_ShieldsInPairs(t *testing.T) {
	s := powerShip(t, 8, 0, map[string]config.SystemDefinition{
		"Shields": {Room: 1, PowerMax: 4, PowerCurrent: 4},
	})
	if n, _ := s.RemoveSystemPower(entities.Shields); n != 2 {
		t.Errorf("RemoveSystemPower(Shields 4) = %d, want 2", n)
	}
	if got := s.ShieldLayers(); got != 1 {
		t.Errorf("ShieldLayers() = %d, want 1", got)
	}

	s.systems[entities.Shields].PowerCurrent = 3
	if n, _ := s.RemoveSystemPower(entities.Shields); n != 1 {
		t.Errorf("RemoveSystemPower(Shields 3) = %d, want 1", n)
	}
}

func TestRemoveSystemPower_KeepsZoltanPower(t *testing.T) {
	s := powerShip(t, 4, 0, map[string]config.SystemDefinition{
		"Engines": {Room: 1, PowerMax: 3, PowerCurrent: 1},
	})
	s.systems[entities.Engines].PowerZoltans = 1

	if n, err := s.RemoveSystemPower(entities.Engines); n != 0 || err != nil {
		t.Errorf("RemoveSystemPower() = %d, %v, want 0, nil", n, err)
	}
}

func TestPower_BackupSpentFirstAndReturned(t *testing.T) {
	s := powerShip(t, 3, 2, map[string]config.SystemDefinition{
		"Engines": {Room: 1, PowerMax: 3},
	})
	r := s.ReactorSnapshot()
	if r.PowerAvailable != 5 || r.BackupPowerAvailable != 2 {
		t.Fatalf("reactor = %+v, want 5 available with 2 backup", r)
	}

	if _, err := s.AddSystemPower(entities.Engines); err != nil {
		t.Fatal(err)
	}
	r = s.ReactorSnapshot()
	if r.PowerAvailable != 4 || r.BackupPowerAvailable != 1 {
		t.Errorf("reactor after add = %+v, want 4 available with 1 backup", r)
	}
	if sys, _ := s.SystemSnapshot(entities.Engines); sys.PowerBackup != 1 {
		t.Errorf("PowerBackup = %d, want 1", sys.PowerBackup)
	}

	if _, err := s.RemoveSystemPower(entities.Engines); err != nil {
		t.Fatal(err)
	}
	r = s.ReactorSnapshot()
	if r.PowerAvailable != 5 || r.BackupPowerAvailable != 2 {
		t.Errorf("reactor after remove = %+v, want 5 available with 2 backup", r)
	}
}

func TestPower_IgnoredSystems(t *testing.T) {
	s := powerShip(t, 4, 0, map[string]config.SystemDefinition{
		"WeaponControl": {Room: 1, PowerMax: 3},
		"DroneControl":  {Room: 2, PowerMax: 2, PowerCurrent: 1},
	})
	for _, name := range []entities.SystemName{entities.WeaponControl, entities.DroneControl} {
		if n, err := s.AddSystemPower(name); n != 0 || err != nil {
			t.Errorf("AddSystemPower(%v) = %d, %v, want 0, nil", name, n, err)
		}
		if n, err := s.RemoveSystemPower(name); n != 0 || err != nil {
			t.Errorf("RemoveSystemPower(%v) = %d, %v, want 0, nil", name, n, err)
		}
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 3 {
		t.Errorf("PowerAvailable = %d, want 3", got)
	}
}

func TestPower_SubsystemsDrawFromReactor(t *testing.T) {
	s := powerShip(t, 4, 0, map[string]config.SystemDefinition{
		"Piloting": {Room: 1, PowerMax: 2, PowerCurrent: 1},
		"Sensors":  {Room: 2, PowerMax: 3},
	})
	if n, err := s.AddSystemPower(entities.Piloting); n != 1 || err != nil {
		t.Fatalf("AddSystemPower(Piloting) = %d, %v, want 1, nil", n, err)
	}
	if n, _ := s.AddSystemPower(entities.Piloting); n != 0 {
		t.Errorf("AddSystemPower(Piloting) at max = %d, want 0", n)
	}
	if n, _ := s.AddSystemPower(entities.Sensors); n != 1 {
		t.Errorf("AddSystemPower(Sensors) = %d, want 1", n)
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 2 {
		t.Errorf("PowerAvailable = %d, want 2", got)
	}

	if n, err := s.RemoveSystemPower(entities.Sensors); n != 1 || err != nil {
		t.Errorf("RemoveSystemPower(Sensors) = %d, %v, want 1, nil", n, err)
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 3 {
		t.Errorf("PowerAvailable after remove = %d, want 3", got)
	}

	// Piloting now holds one upgrade unit and one reactor unit.
	for i := 0; i < 2; i++ {
		if n, _ := s.RemoveSystemPower(entities.Piloting); n != 1 {
			t.Errorf("RemoveSystemPower(Piloting) #%d = %d, want 1", i+1, n)
		}
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 4 {
		t.Errorf("PowerAvailable with every subsystem off = %d, want 4", got)
	}
}

func TestPower_DoorSystemSetsDoorLevels(t *testing.T) {
	def := twoRoomDef()
	def.Systems = map[string]config.SystemDefinition{
		"DoorSystem": {Room: 1, PowerMax: 3, PowerCurrent: 1},
	}
	s := buildShip(t, def)
	if len(s.AllDoors()) == 0 {
		t.Fatal("ship has no doors")
	}
	for _, d := range s.AllDoors() {
		if d.Level != entities.DoorLevel1 {
			t.Fatalf("door %s level = %v, want L1", d.Key, d.Level)
		}
	}

	if n, err := s.AddSystemPower(entities.DoorSystem); n != 1 || err != nil {
		t.Fatalf("AddSystemPower(DoorSystem) = %d, %v, want 1, nil", n, err)
	}
	for _, d := range s.AllDoors() {
		if d.Level != entities.DoorLevel2 {
			t.Errorf("door %s level after adding power = %v, want L2", d.Key, d.Level)
		}
	}
	if got := s.ReactorSnapshot().PowerAvailable; got != 4 {
		t.Errorf("PowerAvailable = %d, want 4", got)
	}

	if _, err := s.RemoveSystemPower(entities.DoorSystem); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RemoveSystemPower(entities.DoorSystem); err != nil {
		t.Fatal(err)
	}
	for _, d := range s.AllDoors() {
		if d.Level != entities.DoorLevelNone {
			t.Errorf("door %s level after removing power = %v, want none", d.Key, d.Level)
		}
	}
	// Only the unit drawn from the reactor went back; the starting upgrade unit is gone.
	if got := s.ReactorSnapshot().PowerAvailable; got != 5 {
		t.Errorf("PowerAvailable after removing all power = %d, want 5", got)
	}
}

func TestPower_MissingSystem(t *testing.T) {
	s := powerShip(t, 4, 0, nil)
	if _, err := s.AddSystemPower(entities.Cloaking); !errors.Is(err, errs.ErrInvalidOperation) {
		t.Errorf("AddSystemPower(missing) error = %v, want ErrInvalidOperation", err)
	}
	if _, err := s.RemoveSystemPower(entities.Cloaking); !errors.Is(err, errs.ErrInvalidOperation) {
		t.Errorf("RemoveSystemPower(missing) error = %v, want ErrInvalidOperation", err)
	}
}
