package world

import (
	"errors"
	"testing"

	"starship/pkg/engine/errs"
)

func TestExpandLayout_PadsWithSpace(t *testing.T) {
	g, err := ExpandLayout([][]int{
		{1, 1},
		{2, 0},
	})
	if err != nil {
		t.Fatalf("ExpandLayout: %v", err)
	}
	if g.Rows() != 4 || g.Cols() != 4 {
		t.Fatalf("grid size = %dx%d, want 4x4", g.Rows(), g.Cols())
	}

	want := [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
	}
	got := g.Matrix()
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Errorf("Matrix()[%d][%d] = %d, want %d", r, c, got[r][c], want[r][c])
			}
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestExpandLayout_Deterministic(t *testing.T) {
	raw := [][]int{{3, 3, 0}, {0, 4, 4}}
	a, _ := ExpandLayout(raw)
	b, _ := ExpandLayout(raw)
	am, bm := a.Matrix(), b.Matrix()
	for r := range am {
		for c := range am[r] {
			if am[r][c] != bm[r][c] {
				t.Fatalf("two expansions differ at (%d,%d)", r, c)
			}
		}
	}
}

func TestExpandLayout_Rejects(t *testing.T) {
	cases := map[string][][]int{
		"empty":    nil,
		"ragged":   {{1, 1}, {1}},
		"negative": {{1, -2}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ExpandLayout(raw)
			if !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("ExpandLayout(%v) error = %v, want ErrConfiguration", raw, err)
			}
		})
	}
}

func TestGrid_CellLinks(t *testing.T) {
	g, err := ExpandLayout([][]int{{1, 2}})
	if err != nil {
		t.Fatalf("ExpandLayout: %v", err)
	}
	left := g.GetCell(1, 1)
	if left.East == nil || left.East.Room != 2 {
		t.Errorf("cell (1,1).East room = %v, want 2", left.East)
	}
	if left.East.West != left {
		t.Error("East/West links are not symmetric")
	}
	if left.North == nil || !left.North.IsSpace() {
		t.Error("cell above a room on the border row should be space")
	}
	if g.GetCell(0, 0).North != nil {
		t.Error("corner cell should have no northern neighbour")
	}
}

func TestGrid_RoomAtOutOfBoundsIsSpace(t *testing.T) {
	g := NewGrid(2, 2)
	if got := g.RoomAt(-1, 5); got != Space {
		t.Errorf("RoomAt(-1, 5) = %d, want %d", got, Space)
	}
}

func TestGrid_RoomIDs(t *testing.T) {
	g, _ := ExpandLayout([][]int{{5, 0, 2}, {5, 9, 2}})
	got := g.RoomIDs()
	want := []int{2, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("RoomIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RoomIDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestGrid_ValidateRejectsBorderRoom(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetRoom(0, 1, 4)
	if err := g.Validate(); !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("Validate() = %v, want ErrConfiguration", err)
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%v and its opposite do not cancel", d)
		}
	}
}
