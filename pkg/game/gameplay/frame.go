package gameplay

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"starship/pkg/game/entities"
	"starship/pkg/game/ship"
)

// RoomView is what a renderer needs to draw a room.
type RoomView struct {
	ID      int
	Status  entities.RoomStatus
	Oxygen  float64
	Bucket  int
	Hacked  bool
	Visible bool
}

// DoorView is what a renderer needs to draw a door.
type DoorView struct {
	Key      string
	Position int
	Level    entities.DoorLevel
	Hacked   bool
	State    entities.DoorState
}

// Frame lists what changed on the player ship during a step. Rooms holds the
// rooms whose oxygen display step changed, Doors the doors that moved.
type Frame struct {
	Rooms         []RoomView
	Doors         []DoorView
	EnergyChanged bool
	Paused        bool
}

// Empty reports whether nothing needs redrawing.
func (f Frame) Empty() bool {
	return len(f.Rooms) == 0 && len(f.Doors) == 0 && !f.EnergyChanged
}

// Merge folds a later frame into f. Views from later win.
func (f Frame) Merge(later Frame) Frame {
	out := Frame{
		EnergyChanged: f.EnergyChanged || later.EnergyChanged,
		Paused:        later.Paused,
	}

	seenRooms := mapset.New[int]()
	for _, list := range [][]RoomView{later.Rooms, f.Rooms} {
		for _, r := range list {
			if !seenRooms.Has(r.ID) {
				seenRooms.Put(r.ID)
				out.Rooms = append(out.Rooms, r)
			}
		}
	}
	sort.Slice(out.Rooms, func(i, j int) bool { return out.Rooms[i].ID < out.Rooms[j].ID })

	seenDoors := mapset.New[string]()
	for _, list := range [][]DoorView{later.Doors, f.Doors} {
		for _, d := range list {
			if !seenDoors.Has(d.Key) {
				seenDoors.Put(d.Key)
				out.Doors = append(out.Doors, d)
			}
		}
	}
	sort.Slice(out.Doors, func(i, j int) bool { return out.Doors[i].Key < out.Doors[j].Key })
	return out
}

// Snapshot describes every room and door of s, for the first draw.
func Snapshot(s *ship.Ship) Frame {
	return Frame{
		Rooms:         RoomViews(s, s.RoomIDs()),
		Doors:         DoorViews(s, doorKeys(s)),
		EnergyChanged: true,
	}
}

// RoomViews builds views for the given rooms, skipping unknown ids.
func RoomViews(s *ship.Ship, ids []int) []RoomView {
	views := make([]RoomView, 0, len(ids))
	for _, id := range ids {
		r, ok := s.Room(id)
		if !ok {
			continue
		}
		views = append(views, RoomView{
			ID:      r.ID,
			Status:  r.Status(),
			Oxygen:  r.Oxygen(),
			Bucket:  r.OxygenBucket(),
			Hacked:  r.Hacked(),
			Visible: r.Visible(),
		})
	}
	return views
}

// DoorViews builds views for the given doors, skipping unknown keys.
func DoorViews(s *ship.Ship, keys []string) []DoorView {
	views := make([]DoorView, 0, len(keys))
	for _, key := range keys {
		d, ok := s.Door(key)
		if !ok {
			continue
		}
		state, _ := s.DoorState(key)
		views = append(views, DoorView{
			Key:      d.Key,
			Position: d.Position(),
			Level:    d.Level,
			Hacked:   d.Hacked,
			State:    state,
		})
	}
	return views
}

func doorKeys(s *ship.Ship) []string {
	doors := s.AllDoors()
	keys := make([]string, len(doors))
	for i, d := range doors {
		keys[i] = d.Key
	}
	return keys
}
