package ship

import (
	"math"
	"testing"

	"starship/pkg/engine/logging"
	"starship/pkg/game/config"
)

func testParams() config.General {
	return config.Default().General
}

// buildShip builds def with the default parameters and fails the test on error.
func buildShip(t *testing.T, def config.ShipDefinition) *Ship {
	t.Helper()
	s, err := New(def, testParams(), logging.Discard())
	if err != nil {
		t.Fatalf("New(%q): %v", def.Name, err)
	}
	return s
}

// twoRoomDef is rooms 1 and 2 side by side with one door between them.
func twoRoomDef() config.ShipDefinition {
	return config.ShipDefinition{
		Name:          "pair",
		ReactorPower:  5,
		HullPoints:    10,
		Layout:        [][]int{{1, 2}},
		DoorsVertical: [][]int{{}, {2}},
	}
}

// openDoor toggles a door and runs its animation to the end.
func openDoor(t *testing.T, s *Ship, key string) {
	t.Helper()
	ok, err := s.ToggleDoor(key, false)
	if err != nil || !ok {
		t.Fatalf("ToggleDoor(%s) = %v, %v", key, ok, err)
	}
	s.AdvanceDoors(10_000)
	if d, _ := s.Door(key); !d.IsFullyOpen() {
		t.Fatalf("door %s not open after advancing", key)
	}
}

func setOxygen(t *testing.T, s *Ship, room int, v float64) {
	t.Helper()
	r, ok := s.Room(room)
	if !ok {
		t.Fatalf("room %d missing", room)
	}
	r.SetOxygen(v)
}

func oxygenOf(t *testing.T, s *Ship, room int) float64 {
	t.Helper()
	r, ok := s.Room(room)
	if !ok {
		t.Fatalf("room %d missing", room)
	}
	return r.Oxygen()
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
