package world

import (
	"sort"

	"starship/pkg/engine/errs"
)

// DoorMatrix marks the tile boundaries that carry a door.
//
// A vertical matrix has shape rows x (cols-1): entry [r][c] is the boundary
// between tiles (r,c) and (r,c+1). A horizontal matrix has shape (rows-1) x cols:
// entry [r][c] is the boundary between tiles (r,c) and (r+1,c).
type DoorMatrix [][]bool

// Has reports whether the boundary at [row][col] carries a door.
func (m DoorMatrix) Has(row, col int) bool {
	return row >= 0 && row < len(m) && col >= 0 && col < len(m[row]) && m[row][col]
}

// Count returns the number of doors in the matrix.
func (m DoorMatrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// DoorMatrixVertical builds the vertical door matrix from one list per expanded row.
// Each value k is a 1-indexed column boundary: the door sits between columns k-1 and k.
// Rows without a list have no vertical doors.
func DoorMatrixVertical(g *Grid, perRow [][]int) (DoorMatrix, error) {
	if len(perRow) > g.rows {
		return nil, errs.Configurationf("vertical door list has %d rows, grid has %d", len(perRow), g.rows)
	}
	m := newDoorMatrix(g.rows, g.cols-1)
	for row, boundaries := range perRow {
		for _, k := range boundaries {
			if k < 1 || k > g.cols-1 {
				return nil, errs.Configurationf("vertical door at row %d: boundary %d outside 1..%d", row, k, g.cols-1)
			}
			m[row][k-1] = true
		}
	}
	return m, nil
}

// DoorMatrixHorizontal builds the horizontal door matrix from one list per expanded column.
// Each value k is a 1-indexed row boundary: the door sits between rows k-1 and k.
// Columns without a list have no horizontal doors.
func DoorMatrixHorizontal(g *Grid, perCol [][]int) (DoorMatrix, error) {
	if len(perCol) > g.cols {
		return nil, errs.Configurationf("horizontal door list has %d columns, grid has %d", len(perCol), g.cols)
	}
	m := newDoorMatrix(g.rows-1, g.cols)
	for col, boundaries := range perCol {
		for _, k := range boundaries {
			if k < 1 || k > g.rows-1 {
				return nil, errs.Configurationf("horizontal door at column %d: boundary %d outside 1..%d", col, k, g.rows-1)
			}
			m[k-1][col] = true
		}
	}
	return m, nil
}

func newDoorMatrix(rows, cols int) DoorMatrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := make(DoorMatrix, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// Boundary is a door position: the two tiles it separates, first tile north or west of the second.
type Boundary struct {
	Orientation Orientation
	First       *Cell
	Second      *Cell
}

// Boundaries lists every door position of both matrices: vertical doors first,
// each matrix in row-major order.
func Boundaries(g *Grid, vertical, horizontal DoorMatrix) []Boundary {
	var out []Boundary
	collect := func(m DoorMatrix, o Orientation) {
		for row := range m {
			for col := range m[row] {
				if !m[row][col] {
					continue
				}
				first := g.GetCell(row, col)
				out = append(out, Boundary{
					Orientation: o,
					First:       first,
					Second:      first.GetNeighbor(o.Across()),
				})
			}
		}
	}
	collect(vertical, Vertical)
	collect(horizontal, Horizontal)
	return out
}

// Footprint is the rectangle of tiles a room covers, in expanded grid coordinates.
type Footprint struct {
	Room   int
	X      int
	Y      int
	Width  int
	Height int
}

// Size returns the number of tiles in the footprint.
func (f Footprint) Size() int {
	return f.Width * f.Height
}

// Contains reports whether the tile at (x, y) lies in the footprint.
func (f Footprint) Contains(x, y int) bool {
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// Footprints measures every room of the grid. A room whose tiles do not fill
// their bounding rectangle is rejected.
func Footprints(g *Grid) (map[int]Footprint, error) {
	type box struct {
		minX, minY, maxX, maxY, tiles int
	}
	boxes := make(map[int]*box)
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Room == Space {
			return
		}
		b, ok := boxes[cell.Room]
		if !ok {
			boxes[cell.Room] = &box{minX: col, minY: row, maxX: col, maxY: row, tiles: 1}
			return
		}
		b.minX = min(b.minX, col)
		b.minY = min(b.minY, row)
		b.maxX = max(b.maxX, col)
		b.maxY = max(b.maxY, row)
		b.tiles++
	})

	ids := make([]int, 0, len(boxes))
	for id := range boxes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make(map[int]Footprint, len(boxes))
	for _, id := range ids {
		b := boxes[id]
		f := Footprint{Room: id, X: b.minX, Y: b.minY, Width: b.maxX - b.minX + 1, Height: b.maxY - b.minY + 1}
		if f.Size() != b.tiles {
			return nil, errs.Configurationf("room %d is not rectangular: %d tiles in a %dx%d box", id, b.tiles, f.Width, f.Height)
		}
		out[id] = f
	}
	return out, nil
}
