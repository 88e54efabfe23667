package world

import (
	"sort"

	"starship/pkg/engine/errs"
)

// Grid holds the expanded tile matrix of a ship. Row 0, the last row and the
// first and last columns are always space.
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates an all-space grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// ExpandLayout copies raw into a new grid padded with one tile of space on every side.
// The layout must be a non-empty rectangle of non-negative room ids.
func ExpandLayout(raw [][]int) (*Grid, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, errs.Configurationf("layout is empty")
	}
	width := len(raw[0])
	for r, row := range raw {
		if len(row) != width {
			return nil, errs.Configurationf("layout row %d has %d columns, want %d", r, len(row), width)
		}
		for c, id := range row {
			if id < 0 {
				return nil, errs.Configurationf("layout tile (%d,%d) has negative room id %d", r, c, id)
			}
		}
	}

	g := NewGrid(len(raw)+2, width+2)
	for r, row := range raw {
		for c, id := range row {
			g.cells[r+1][c+1].Room = id
		}
	}
	g.BuildAllCellConnections()
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOnPerimeter checks if a position is on the padding border
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && (row == 0 || col == 0 || row == g.rows-1 || col == g.cols-1)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// RoomAt returns the room id at a position. Out of bounds counts as space.
func (g *Grid) RoomAt(row, col int) int {
	c := g.GetCell(row, col)
	if c == nil {
		return Space
	}
	return c.Room
}

// SetRoom assigns a room id to a tile. Returns false if out of bounds.
func (g *Grid) SetRoom(row, col, room int) bool {
	c := g.GetCell(row, col)
	if c == nil {
		return false
	}
	c.Room = room
	return true
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col, Space)
		}
	}
}

// BuildAllCellConnections connects all cells to their neighbors
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(_, _ int, cell *Cell) {
		for _, dir := range AllDirections() {
			if adj := g.GetCellRelative(cell, dir); adj != nil {
				cell.SetNeighbor(dir, adj)
				adj.SetNeighbor(dir.Opposite(), cell)
			}
		}
	})
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// RoomIDs returns every room id present in the grid, ascending, without space.
func (g *Grid) RoomIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	g.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.Room != Space && !seen[cell.Room] {
			seen[cell.Room] = true
			ids = append(ids, cell.Room)
		}
	})
	sort.Ints(ids)
	return ids
}

// Matrix returns a copy of the room ids as a plain matrix.
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.rows)
	for row := range m {
		m[row] = make([]int, g.cols)
		for col := range m[row] {
			m[row][col] = g.cells[row][col].Room
		}
	}
	return m
}

// Validate checks that the padding border holds no room tiles.
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return errs.Configurationf("grid has invalid dimensions %dx%d", g.rows, g.cols)
	}
	var err error
	g.ForEachCell(func(row, col int, cell *Cell) {
		if err == nil && g.IsOnPerimeter(row, col) && cell.Room != Space {
			err = errs.Configurationf("room %d reaches the grid border at (%d,%d)", cell.Room, row, col)
		}
	})
	return err
}
