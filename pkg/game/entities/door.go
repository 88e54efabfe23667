// Package entities contains the parts a ship is assembled from:
// rooms, doors and their animations, systems and the reactor.
package entities

import (
	"fmt"

	"starship/pkg/engine/world"
)

// DoorLevel is the upgrade level of a door, derived from the door system.
type DoorLevel int

const (
	DoorLevelNone DoorLevel = iota
	DoorLevel1
	DoorLevel2
	DoorLevel3
	DoorLevel4
)

func (l DoorLevel) String() string {
	return fmt.Sprintf("L%d", int(l))
}

// DoorState is the visible state of a door.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorClosing
	DoorOpen
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorClosing:
		return "closing"
	case DoorOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Door separates two tiles of a ship layout, or a tile and space.
// Position 0 is closed and impassable; any position above 0 lets air through.
type Door struct {
	Key         string
	Orientation world.Orientation
	Room1       int
	Room2       int
	Level       DoorLevel
	Hacked      bool
	Bashed      bool

	position    int
	maxPosition int
}

// DoorKey builds the "x1_y1_x2_y2" key of the door between two tiles.
func DoorKey(first, second *world.Cell) string {
	return first.String() + "_" + second.String()
}

// NewDoor creates a closed door.
func NewDoor(key string, orientation world.Orientation, room1, room2 int, level DoorLevel, maxPosition int) *Door {
	return &Door{
		Key:         key,
		Orientation: orientation,
		Room1:       room1,
		Room2:       room2,
		Level:       level,
		maxPosition: maxPosition,
	}
}

// Position returns how far the door has retracted, 0..MaxPosition.
func (d *Door) Position() int {
	return d.position
}

// MaxPosition returns the fully open position.
func (d *Door) MaxPosition() int {
	return d.maxPosition
}

// IsOpen reports whether air and crew can pass, i.e. the door is not fully closed.
func (d *Door) IsOpen() bool {
	return d.position > 0
}

// IsFullyOpen reports whether the door has fully retracted.
func (d *Door) IsFullyOpen() bool {
	return d.position == d.maxPosition
}

// IsSpaceDoor reports whether one side of the door is space.
func (d *Door) IsSpaceDoor() bool {
	return d.Room1 == world.Space || d.Room2 == world.Space
}

// Other returns the room on the far side of the door from room, and false
// if the door does not touch room.
func (d *Door) Other(room int) (int, bool) {
	switch room {
	case d.Room1:
		return d.Room2, true
	case d.Room2:
		return d.Room1, true
	default:
		return 0, false
	}
}

// BlocksManualToggle reports whether a player click is refused.
func (d *Door) BlocksManualToggle() bool {
	return d.Hacked || d.Bashed
}

func (d *Door) setPosition(p int) {
	d.position = max(0, min(p, d.maxPosition))
}
