package renderer

import (
	"image"

	"starship/pkg/engine/world"
	"starship/pkg/game/entities"
	"starship/pkg/game/ship"
)

// DoorSlot places a door on the tile grid: it sits on the east edge (vertical
// doors) or the south edge (horizontal doors) of tile Row, Col.
type DoorSlot struct {
	Key         string
	Orientation world.Orientation
	Row         int
	Col         int
}

// DoorSlots lists where every door of s is drawn, in layout order.
func DoorSlots(s *ship.Ship) []DoorSlot {
	vertical, horizontal := s.DoorMatrices()
	bounds := world.Boundaries(s.Grid(), vertical, horizontal)
	slots := make([]DoorSlot, 0, len(bounds))
	for _, b := range bounds {
		slots = append(slots, DoorSlot{
			Key:         entities.DoorKey(b.First, b.Second),
			Orientation: b.Orientation,
			Row:         b.First.Row,
			Col:         b.First.Col,
		})
	}
	return slots
}

// Rect is the door's hit box when tiles are tile pixels wide, origin at the
// top left of the grid.
func (d DoorSlot) Rect(tile int) image.Rectangle {
	thick := max(2, tile/4)
	inset := tile / 5
	if d.Orientation == world.Vertical {
		x := (d.Col+1)*tile - thick/2
		return image.Rect(x, d.Row*tile+inset, x+thick, (d.Row+1)*tile-inset)
	}
	y := (d.Row+1)*tile - thick/2
	return image.Rect(d.Col*tile+inset, y, (d.Col+1)*tile-inset, y+thick)
}

// DoorAt returns the key of the door under the point, if any.
func DoorAt(slots []DoorSlot, tile int, p image.Point) (string, bool) {
	for _, d := range slots {
		if p.In(d.Rect(tile)) {
			return d.Key, true
		}
	}
	return "", false
}
