package renderer

import (
	"image"
	"testing"

	"starship/pkg/engine/logging"
	"starship/pkg/engine/world"
	"starship/pkg/game/config"
	"starship/pkg/game/entities"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/ship"
)

func kestrel(t *testing.T) *ship.Ship {
	t.Helper()
	cfg := config.Default()
	def, err := cfg.Ship("kestrel_a")
	if err != nil {
		t.Fatal(err)
	}
	s, err := ship.New(def, cfg.General, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestOxygenStyle(t *testing.T) {
	tests := []struct {
		oxygen float64
		want   TextStyle
	}{
		{100, StyleOxygenFull},
		{50, StyleOxygenFull},
		{49.9, StyleOxygenLow},
		{5, StyleOxygenLow},
		{4.9, StyleOxygenCritical},
	}
	for _, tt := range tests {
		if got := OxygenStyle(tt.oxygen, 5); got != tt.want {
			t.Errorf("OxygenStyle(%v) = %v, want %v", tt.oxygen, got, tt.want)
		}
	}
}

func TestDoorStyle(t *testing.T) {
	tests := []struct {
		view gameplay.DoorView
		want TextStyle
	}{
		{gameplay.DoorView{State: entities.DoorClosed}, StyleDoorClosed},
		{gameplay.DoorView{State: entities.DoorOpen}, StyleDoorOpen},
		{gameplay.DoorView{State: entities.DoorClosing}, StyleDoorMoving},
		{gameplay.DoorView{State: entities.DoorOpen, Hacked: true}, StyleDoorSealed},
	}
	for _, tt := range tests {
		if got := DoorStyle(tt.view); got != tt.want {
			t.Errorf("DoorStyle(%+v) = %v, want %v", tt.view, got, tt.want)
		}
	}
}

func TestReactorBars(t *testing.T) {
	r := entities.ReactorState{
		SystemPower:          6,
		SystemBackupPower:    2,
		PowerAvailable:       4,
		BackupPowerAvailable: 1,
		PowerBlocked:         1,
	}
	got := ReactorBars(r)
	want := []entities.Bar{
		entities.BarReactor, entities.BarReactor, entities.BarReactor,
		entities.BarUnassigned, entities.BarUnassigned, entities.BarUnassigned,
		entities.BarBackup,
		entities.BarBlocked,
	}
	if len(got) != len(want) {
		t.Fatalf("ReactorBars() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReactorBars()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDoorSlots_Kestrel(t *testing.T) {
	s := kestrel(t)
	slots := DoorSlots(s)
	if len(slots) != 26 {
		t.Fatalf("len(DoorSlots()) = %d, want 26", len(slots))
	}
	for _, slot := range slots {
		if _, ok := s.Door(slot.Key); !ok {
			t.Errorf("slot %s has no door", slot.Key)
		}
	}

	first := slots[0]
	if first.Orientation != world.Vertical {
		t.Errorf("first slot orientation = %v, want vertical doors listed first", first.Orientation)
	}
}

func TestDoorAt(t *testing.T) {
	slots := []DoorSlot{
		{Key: "v", Orientation: world.Vertical, Row: 1, Col: 1},
		{Key: "h", Orientation: world.Horizontal, Row: 2, Col: 3},
	}
	const tile = 20

	if key, ok := DoorAt(slots, tile, image.Pt(40, 30)); !ok || key != "v" {
		t.Errorf("DoorAt(east edge of 1,1) = %q, %v, want v", key, ok)
	}
	if key, ok := DoorAt(slots, tile, image.Pt(70, 60)); !ok || key != "h" {
		t.Errorf("DoorAt(south edge of 2,3) = %q, %v, want h", key, ok)
	}
	if _, ok := DoorAt(slots, tile, image.Pt(10, 10)); ok {
		t.Errorf("DoorAt(inside a tile) found a door")
	}
}
