package ship

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"starship/pkg/engine/world"
	"starship/pkg/game/entities"
)

// Connection is an unordered pair of rooms joined by at least one door.
// Low is never greater than High; space is room 0.
type Connection struct {
	Low  int
	High int
}

// Connect builds the canonical pair for two rooms.
func Connect(a, b int) Connection {
	if a > b {
		a, b = b, a
	}
	return Connection{Low: a, High: b}
}

// Has reports whether the pair includes room.
func (c Connection) Has(room int) bool {
	return c.Low == room || c.High == room
}

// Other returns the room paired with room.
func (c Connection) Other(room int) int {
	if c.Low == room {
		return c.High
	}
	return c.Low
}

// AllConnections returns every room pair joined by a door, sorted, without duplicates.
func AllConnections(doors map[string]*entities.Door) []Connection {
	return connections(doors, func(*entities.Door) bool { return true })
}

// OpenConnections returns the pairs joined by at least one door that is not fully
// closed. It returns nil when no door is open.
func OpenConnections(doors map[string]*entities.Door) []Connection {
	return connections(doors, (*entities.Door).IsOpen)
}

func connections(doors map[string]*entities.Door, include func(*entities.Door) bool) []Connection {
	pairs := mapset.New[Connection]()
	for _, d := range doors {
		if include(d) {
			pairs.Put(Connect(d.Room1, d.Room2))
		}
	}
	if pairs.Size() == 0 {
		return nil
	}

	out := make([]Connection, 0, pairs.Size())
	pairs.Each(func(c Connection) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Low != out[j].Low {
			return out[i].Low < out[j].Low
		}
		return out[i].High < out[j].High
	})
	return out
}

// indexDoorRooms builds the door->rooms and room->doors lookups and the set of space doors.
func (s *Ship) indexDoorRooms() {
	s.doorRooms = make(map[string]Connection, len(s.doors))
	s.roomDoors = make(map[int]mapset.Set[string], len(s.rooms))
	s.spaceDoors = mapset.New[string]()

	for _, id := range s.roomIDs {
		s.roomDoors[id] = mapset.New[string]()
	}
	for key, d := range s.doors {
		s.doorRooms[key] = Connect(d.Room1, d.Room2)
		if d.IsSpaceDoor() {
			s.spaceDoors.Put(key)
		}
		for _, room := range []int{d.Room1, d.Room2} {
			if room != world.Space {
				s.roomDoors[room].Put(key)
			}
		}
	}
}

// refreshOpenConnections recomputes the open pairs after doors moved.
func (s *Ship) refreshOpenConnections() {
	s.openConnections = OpenConnections(s.doors)
}

// AllConnections returns the room pairs joined by any door.
func (s *Ship) AllConnections() []Connection {
	return append([]Connection(nil), s.allConnections...)
}

// OpenConnections returns the room pairs joined by an open door, or nil if every door is shut.
func (s *Ship) OpenConnections() []Connection {
	if s.openConnections == nil {
		return nil
	}
	return append([]Connection(nil), s.openConnections...)
}

// RoomsConnectedOpenly returns the rooms, space included, that share an open door with room.
func (s *Ship) RoomsConnectedOpenly(room int) mapset.Set[int] {
	out := mapset.New[int]()
	for _, c := range s.openConnections {
		if c.Has(room) {
			out.Put(c.Other(room))
		}
	}
	return out
}

// ConnectedOpenly reports whether an open door joins rooms a and b.
func (s *Ship) ConnectedOpenly(a, b int) bool {
	want := Connect(a, b)
	for _, c := range s.openConnections {
		if c == want {
			return true
		}
	}
	return false
}

// DoorsOfRoom returns the keys of the doors touching room, sorted.
func (s *Ship) DoorsOfRoom(room int) []string {
	set, ok := s.roomDoors[room]
	if !ok {
		return nil
	}
	return sortedKeys(set)
}

// RoomsOfDoor returns the pair of rooms a door separates.
func (s *Ship) RoomsOfDoor(key string) (Connection, bool) {
	c, ok := s.doorRooms[key]
	return c, ok
}

// SpaceDoors returns the keys of doors that open onto space, sorted.
func (s *Ship) SpaceDoors() []string {
	return sortedKeys(s.spaceDoors)
}

func sortedKeys(set mapset.Set[string]) []string {
	out := make([]string, 0, set.Size())
	set.Each(func(k string) {
		out = append(out, k)
	})
	sort.Strings(out)
	return out
}
