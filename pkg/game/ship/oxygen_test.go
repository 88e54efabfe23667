package ship

import (
	"reflect"
	"testing"

	"starship/pkg/game/config"
)

func TestUpdateOxygen_ClosedRoomsLeak(t *testing.T) {
	s := buildShip(t, twoRoomDef())
	setOxygen(t, s, 1, 80)
	setOxygen(t, s, 2, 20)

	s.UpdateOxygen(100)

	if got := oxygenOf(t, s, 1); !near(got, 79.9) {
		t.Errorf("room 1 oxygen = %v, want 79.9", got)
	}
	if got := oxygenOf(t, s, 2); !near(got, 19.9) {
		t.Errorf("room 2 oxygen = %v, want 19.9", got)
	}
}

func TestUpdateOxygen_OpenDoorIsSymmetric(t *testing.T) {
	s := buildShip(t, twoRoomDef())
	openDoor(t, s, "1_1_2_1")
	setOxygen(t, s, 1, 80)
	setOxygen(t, s, 2, 20)

	changed := s.UpdateOxygen(100)

	// gradient 15*60 caps at 30, times 1.6 over 0.1s
	if got := oxygenOf(t, s, 1); !near(got, 75.1) {
		t.Errorf("room 1 oxygen = %v, want 75.1", got)
	}
	if got := oxygenOf(t, s, 2); !near(got, 24.7) {
		t.Errorf("room 2 oxygen = %v, want 24.7", got)
	}
	if !reflect.DeepEqual(changed, []int{1}) {
		t.Errorf("UpdateOxygen() changed = %v, want [1]", changed)
	}
}

func TestUpdateOxygen_DuplicateDoorsCountOnce(t *testing.T) {
	def := config.ShipDefinition{
		Name:          "double",
		Layout:        [][]int{{1, 2}, {1, 2}},
		DoorsVertical: [][]int{{}, {2}, {2}},
	}
	s := buildShip(t, def)
	openDoor(t, s, "1_1_2_1")
	openDoor(t, s, "1_2_2_2")
	setOxygen(t, s, 1, 80)
	setOxygen(t, s, 2, 20)

	s.UpdateOxygen(100)

	if got := oxygenOf(t, s, 1); !near(got, 75.1) {
		t.Errorf("room 1 oxygen = %v, want 75.1", got)
	}
}

func TestUpdateOxygen_SpaceDoorVents(t *testing.T) {
	def := config.ShipDefinition{
		Name:          "pod",
		Layout:        [][]int{{1}},
		DoorsVertical: [][]int{{}, {1}},
	}
	s := buildShip(t, def)
	if got := s.SpaceDoors(); !reflect.DeepEqual(got, []string{"0_1_1_1"}) {
		t.Fatalf("SpaceDoors() = %v", got)
	}
	openDoor(t, s, "0_1_1_1")

	s.UpdateOxygen(100)
	if got := oxygenOf(t, s, 1); !near(got, 49.9) {
		t.Errorf("oxygen = %v, want 49.9", got)
	}
	s.UpdateOxygen(1000)
	if got := oxygenOf(t, s, 1); got != 0 {
		t.Errorf("oxygen = %v, want clamped to 0", got)
	}
}

func TestUpdateOxygen_SystemRefills(t *testing.T) {
	def := twoRoomDef()
	def.Systems = map[string]config.SystemDefinition{
		"Oxygen": {Room: 2, PowerMax: 3, PowerCurrent: 1},
	}
	s := buildShip(t, def)
	setOxygen(t, s, 1, 50)
	setOxygen(t, s, 2, 99.5)

	s.UpdateOxygen(1000)

	if got := oxygenOf(t, s, 1); !near(got, 51) {
		t.Errorf("room 1 oxygen = %v, want 51", got)
	}
	if got := oxygenOf(t, s, 2); got != 100 {
		t.Errorf("room 2 oxygen = %v, want clamped to 100", got)
	}
}

func TestUpdateOxygen_EqualisesOverTime(t *testing.T) {
	s := buildShip(t, twoRoomDef())
	openDoor(t, s, "1_1_2_1")
	setOxygen(t, s, 1, 100)
	setOxygen(t, s, 2, 0)

	for i := 0; i < 600; i++ {
		s.UpdateOxygen(16)
	}
	a, b := oxygenOf(t, s, 1), oxygenOf(t, s, 2)
	if a >= 100 || b <= 0 {
		t.Fatalf("oxygen = %v/%v, want both rooms to have moved", a, b)
	}
	if diff := a - b; diff > 0.5 || diff < -0.5 {
		t.Errorf("oxygen = %v/%v, want the rooms level", a, b)
	}
}
