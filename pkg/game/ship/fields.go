package ship

import (
	"starship/pkg/game/config"
	"starship/pkg/game/entities"
)

// Field is one tile a crew member could stand on.
type Field struct {
	X         int
	Y         int
	Room      int
	System    entities.SystemName
	Available bool
}

// createFields lists every room tile. In a medbay or clonebay of more than two
// tiles the tile holding the bay itself is not available to crew.
func (s *Ship) createFields(bay config.Clonebay) {
	s.fields = s.fields[:0]
	for _, id := range s.roomIDs {
		r := s.rooms[id]
		fp := r.Footprint
		bayRoom := (r.System == entities.Medbay || r.System == entities.Clonebay) && fp.Size() > 2
		for ix := 0; ix < fp.Width; ix++ {
			for iy := 0; iy < fp.Height; iy++ {
				s.fields = append(s.fields, Field{
					X:         fp.X + ix,
					Y:         fp.Y + iy,
					Room:      id,
					System:    r.System,
					Available: !(bayRoom && ix == bay.X && iy == bay.Y),
				})
			}
		}
	}
}

// Fields returns the crew fields room by room, column-major within a room.
func (s *Ship) Fields() []Field {
	return append([]Field(nil), s.fields...)
}
