package entities

import "starship/pkg/engine/world"

// RoomStatus is the damage state of a room.
type RoomStatus int

const (
	RoomNormal RoomStatus = iota
	RoomDamaged
	RoomDestroyed
	RoomIonized
)

func (s RoomStatus) String() string {
	switch s {
	case RoomNormal:
		return "normal"
	case RoomDamaged:
		return "damaged"
	case RoomDestroyed:
		return "destroyed"
	case RoomIonized:
		return "ionized"
	default:
		return "unknown"
	}
}

const (
	// OxygenFull is the oxygen level of a freshly built room.
	OxygenFull = 100.0
	// OxygenBucketSize is the width of one display step of the oxygen level.
	OxygenBucketSize = 5
)

// Room is one rectangular compartment of a ship.
type Room struct {
	ID        int
	Footprint world.Footprint
	System    SystemName

	status  RoomStatus
	oxygen  float64
	hacked  bool
	visible bool
}

// NewRoom creates a visible, undamaged room full of air.
func NewRoom(id int, footprint world.Footprint, system SystemName) *Room {
	return &Room{
		ID:        id,
		Footprint: footprint,
		System:    system,
		oxygen:    OxygenFull,
		visible:   true,
	}
}

// HasSystem reports whether a system is installed in the room.
func (r *Room) HasSystem() bool {
	return r.System != NoSystem
}

// Status returns the room's damage status.
func (r *Room) Status() RoomStatus { return r.status }

// Oxygen returns the oxygen level in percent, 0..100.
func (r *Room) Oxygen() float64 { return r.oxygen }

// Hacked reports whether an enemy hacking drone sits in the room.
func (r *Room) Hacked() bool { return r.hacked }

// Visible reports whether the room is shown to the player.
func (r *Room) Visible() bool { return r.visible }

// OxygenBucket is the display step of the oxygen level, 0..20.
func (r *Room) OxygenBucket() int {
	return OxygenBucket(r.oxygen)
}

// OxygenBucket maps an oxygen level onto its display step.
func OxygenBucket(oxygen float64) int {
	return int(oxygen) / OxygenBucketSize
}

// SetOxygen stores a new level clamped to [0, 100] and reports whether the
// display step changed.
func (r *Room) SetOxygen(v float64) bool {
	before := r.OxygenBucket()
	r.oxygen = max(0, min(v, OxygenFull))
	return r.OxygenBucket() != before
}

// SetStatus reports whether the status changed.
func (r *Room) SetStatus(s RoomStatus) bool {
	if r.status == s {
		return false
	}
	r.status = s
	return true
}

// SetHacked reports whether the flag changed.
func (r *Room) SetHacked(h bool) bool {
	if r.hacked == h {
		return false
	}
	r.hacked = h
	return true
}

// SetVisible reports whether the flag changed.
func (r *Room) SetVisible(v bool) bool {
	if r.visible == v {
		return false
	}
	r.visible = v
	return true
}
