// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"starship/pkg/engine/world"
	"starship/pkg/game/ship"
)

// LayoutDumpFilename is where DumpLayoutToFile writes when given no path.
const LayoutDumpFilename = "layout.txt"

// writeLayoutGrid writes one line per grid row: the room id of every tile,
// '.' for space.
func writeLayoutGrid(b *strings.Builder, grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if id := grid.RoomAt(row, col); id != world.Space {
				fmt.Fprintf(b, "%3d", id)
			} else {
				b.WriteString("  .")
			}
		}
		b.WriteString("\n")
	}
}

// DumpLayout writes a debug dump of s: metadata, legend, the expanded tile
// grid, then doors, systems, crew fields and connections, one per line with
// key: value pairs.
func DumpLayout(w io.Writer, s *ship.Ship) error {
	var b strings.Builder
	grid := s.Grid()
	reactor := s.ReactorSnapshot()

	b.WriteString("=== LAYOUT DUMP ===\n\n")
	b.WriteString("--- Metadata ---\n")
	fmt.Fprintf(&b, "ship: %s\n", s.Name)
	fmt.Fprintf(&b, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(&b, "grid_cols: %d\n", grid.Cols())
	b.WriteString("coordinate_system: x,y (x=col, y=row, 0-based, one tile of space padding)\n")
	fmt.Fprintf(&b, "rooms: %d\n", len(s.RoomIDs()))
	fmt.Fprintf(&b, "hull_points: %d\n", s.HullPoints())
	fmt.Fprintf(&b, "reactor_power: %d\n", reactor.SystemPower)
	fmt.Fprintf(&b, "backup_power: %d\n", reactor.SystemBackupPower)
	fmt.Fprintf(&b, "power_available: %d\n", reactor.PowerAvailable)
	fmt.Fprintf(&b, "shield_layers: %d\n", s.ShieldLayers())
	b.WriteString("\n")

	b.WriteString("--- Legend ---\n")
	b.WriteString("number = room id  . = space\n\n")

	b.WriteString("--- Grid ---\n")
	writeLayoutGrid(&b, grid)
	b.WriteString("\n")

	b.WriteString("Doors:\n")
	for _, d := range s.AllDoors() {
		state, _ := s.DoorState(d.Key)
		fmt.Fprintf(&b, "  key: %s orientation: %v rooms: %d,%d level: %v state: %v position: %d hacked: %v\n",
			d.Key, d.Orientation, d.Room1, d.Room2, d.Level, state, d.Position(), d.Hacked)
	}
	b.WriteString("\n")

	b.WriteString("Systems:\n")
	for _, name := range s.SystemNames() {
		sys, err := s.SystemSnapshot(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  name: %v room: %d power: %d/%d backup: %d zoltan: %d damaged: %d ion: %d manned: %d\n",
			name, sys.RoomKey, sys.PowerCurrent, sys.PowerMax, sys.PowerBackup, sys.PowerZoltans,
			sys.Damaged, sys.IonCharges, sys.Manned)
	}
	b.WriteString("\n")

	b.WriteString("Fields:\n")
	for _, f := range s.Fields() {
		if !f.Available {
			fmt.Fprintf(&b, "  x: %d y: %d room: %d available: false\n", f.X, f.Y, f.Room)
		}
	}
	fmt.Fprintf(&b, "  total: %d\n", len(s.Fields()))
	b.WriteString("\n")

	b.WriteString("Connections:\n")
	for _, c := range s.AllConnections() {
		fmt.Fprintf(&b, "  rooms: %d,%d open: %v\n", c.Low, c.High, s.ConnectedOpenly(c.Low, c.High))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DumpLayoutToFile writes DumpLayout to path, or LayoutDumpFilename when path
// is empty, and returns the absolute path written.
func DumpLayoutToFile(s *ship.Ship, path string) (string, error) {
	if path == "" {
		path = LayoutDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLayout(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
