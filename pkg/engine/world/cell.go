// Package world provides the tile grid a ship layout is expanded into,
// and the door boundary matrices derived from it.
package world

import "fmt"

// Space is the room id of tiles outside the hull.
const Space = 0

// Cell is one tile of an expanded layout.
type Cell struct {
	// Grid position. Door keys use Col as x and Row as y.
	Row int
	Col int

	// Room is the id of the room covering this tile, or Space.
	Room int

	// Navigation - links to adjacent cells
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell
}

// NewCell creates a new cell at the given position
func NewCell(row, col, room int) *Cell {
	return &Cell{
		Row:  row,
		Col:  col,
		Room: room,
	}
}

// IsSpace reports whether the tile lies outside the hull.
func (c *Cell) IsSpace() bool {
	return c == nil || c.Room == Space
}

// XY returns the tile position as (x, y), the order used by door keys.
func (c *Cell) XY() (int, int) {
	return c.Col, c.Row
}

// String renders the cell as "x_y".
func (c *Cell) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d_%d", c.Col, c.Row)
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor links the cell to adj in the given direction
func (c *Cell) SetNeighbor(dir Direction, adj *Cell) {
	switch dir {
	case North:
		c.North = adj
	case East:
		c.East = adj
	case South:
		c.South = adj
	case West:
		c.West = adj
	}
}
