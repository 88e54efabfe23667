package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
	"golang.org/x/term"

	"starship/pkg/engine/input"
	"starship/pkg/engine/terminal"
	"starship/pkg/engine/world"
	"starship/pkg/game/entities"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/locale"
	"starship/pkg/game/renderer"
	"starship/pkg/game/ship"
	"starship/pkg/game/state"
)

// Map glyphs
const (
	IconSpace       = " "
	IconFloor       = "▒"
	IconWallV       = "│"
	IconWallH       = "─"
	IconCorner      = "+"
	IconDoorClosedV = "┃"
	IconDoorClosedH = "━"
	IconDoorMovingV = "╎"
	IconDoorMovingH = "╌"
	IconDoorOpen    = "·"
	IconDoorSealed  = "▪"
	IconBarFull     = "■"
	IconBarEmpty    = "□"
	IconSelected    = ">"
)

// lineEnd keeps lines aligned while the input reader holds the terminal in raw mode.
const lineEnd = "\r\n"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	styles map[renderer.TextStyle]color.Style

	// The input goroutine reports parse errors here; the game state is only
	// touched from the loop.
	mu         sync.Mutex
	inputError string
}

// New creates a new TUI renderer writing to out.
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleSubtle:         {color.FgGray, color.OpBold},
		renderer.StyleAction:         {color.FgMagenta},
		renderer.StyleDenied:         {color.FgRed, color.OpBold},
		renderer.StyleSelected:       {color.FgBlack, color.BgWhite},
		renderer.StyleOxygenFull:     {color.FgWhite},
		renderer.StyleOxygenLow:      {color.FgLightRed},
		renderer.StyleOxygenCritical: {color.FgRed, color.OpBold},
		renderer.StyleDoorClosed:     {color.FgYellow, color.OpBold},
		renderer.StyleDoorMoving:     {color.FgYellow},
		renderer.StyleDoorOpen:       {color.FgGreen},
		renderer.StyleDoorSealed:     {color.FgRed},
		renderer.StyleBarReactor:     {color.FgGreen, color.OpBold},
		renderer.StyleBarBackup:      {color.FgLightGreen},
		renderer.StyleBarZoltan:      {color.FgLightYellow},
		renderer.StyleBarIonized:     {color.FgCyan},
		renderer.StyleBarEmpty:       {color.FgGray},
		renderer.StyleBarDamaged:     {color.FgRed},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// ShowMessage prints a message below whatever is on screen.
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, msg+lineEnd)
}

// RenderFrame redraws the whole screen from the player ship.
func (t *TUIRenderer) RenderFrame(g *state.Game, f gameplay.Frame) {
	var b strings.Builder
	width := terminal.RuleWidth(terminal.GetWidth())

	title := g.Player.Name
	if f.Paused || g.Paused {
		title += "  " + t.StyleText(locale.Get("LABEL_PAUSED"), renderer.StyleDenied)
	}
	b.WriteString(t.StyleText(title, renderer.StyleAction) + lineEnd + lineEnd)

	for _, line := range t.shipMap(g.Player, g.Config.General.OxygenMinimumPercent) {
		b.WriteString("  " + line + lineEnd)
	}
	b.WriteString(lineEnd)

	b.WriteString(t.statusLine(g.Player) + lineEnd)
	for _, line := range t.systemLines(g) {
		b.WriteString(line + lineEnd)
	}
	if g.Enemy != nil {
		b.WriteString(lineEnd + t.enemyLine(g.Enemy) + lineEnd)
	}

	b.WriteString(t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle) + lineEnd)
	for _, msg := range g.Messages {
		b.WriteString(msg + lineEnd)
	}
	b.WriteString(t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle) + lineEnd)

	if errText := t.takeInputError(); errText != "" {
		b.WriteString(t.StyleText(errText, renderer.StyleDenied) + lineEnd)
	}
	b.WriteString("> ")

	t.Clear()
	fmt.Fprint(t.out, b.String())
}

// shipMap draws the layout on a canvas twice the grid size plus one: tiles sit
// on odd rows and columns, walls and doors on the even ones between them.
func (t *TUIRenderer) shipMap(s *ship.Ship, minOxygen int) []string {
	grid := s.Grid()

	rooms := make(map[int]gameplay.RoomView)
	for _, r := range gameplay.RoomViews(s, s.RoomIDs()) {
		rooms[r.ID] = r
	}
	labels := make(map[[2]int]string)
	for _, r := range s.Rooms() {
		if r.HasSystem() {
			labels[[2]int{r.Footprint.Y, r.Footprint.X}] = r.System.String()[:1]
		}
	}

	slots := renderer.DoorSlots(s)
	keys := make([]string, len(slots))
	doorAt := make(map[[3]int]string, len(slots))
	for i, slot := range slots {
		keys[i] = slot.Key
		doorAt[[3]int{int(slot.Orientation), slot.Row, slot.Col}] = slot.Key
	}
	doors := make(map[string]gameplay.DoorView, len(slots))
	for _, d := range gameplay.DoorViews(s, keys) {
		doors[d.Key] = d
	}

	floor := func(row, col int) string {
		id := grid.RoomAt(row, col)
		if id == world.Space {
			return IconSpace
		}
		view := rooms[id]
		style := renderer.OxygenStyle(view.Oxygen, float64(minOxygen))
		glyph := IconFloor
		if l, ok := labels[[2]int{row, col}]; ok {
			glyph = l
			if view.Status != entities.RoomNormal {
				style = renderer.StyleDenied
			}
		}
		return t.StyleText(glyph, style)
	}
	// between draws the boundary separating tile a from tile b.
	between := func(o world.Orientation, aRow, aCol, bRow, bCol int) string {
		if key, ok := doorAt[[3]int{int(o), aRow, aCol}]; ok {
			return t.doorGlyph(o, doors[key])
		}
		a, b := grid.RoomAt(aRow, aCol), grid.RoomAt(bRow, bCol)
		switch {
		case a == b && a == world.Space:
			return IconSpace
		case a == b:
			return t.StyleText(IconFloor, renderer.OxygenStyle(rooms[a].Oxygen, float64(minOxygen)))
		case o == world.Vertical:
			return t.StyleText(IconWallV, renderer.StyleSubtle)
		default:
			return t.StyleText(IconWallH, renderer.StyleSubtle)
		}
	}
	corner := func(row, col int) string {
		id := grid.RoomAt(row-1, col-1)
		if grid.RoomAt(row-1, col) == id && grid.RoomAt(row, col-1) == id && grid.RoomAt(row, col) == id {
			if id == world.Space {
				return IconSpace
			}
			return t.StyleText(IconFloor, renderer.OxygenStyle(rooms[id].Oxygen, float64(minOxygen)))
		}
		return t.StyleText(IconCorner, renderer.StyleSubtle)
	}

	lines := make([]string, 0, grid.Rows()*2+1)
	for y := 0; y <= grid.Rows()*2; y++ {
		var b strings.Builder
		for x := 0; x <= grid.Cols()*2; x++ {
			row, col := y/2, x/2
			switch {
			case y%2 == 1 && x%2 == 1:
				b.WriteString(floor(row, col))
			case y%2 == 1:
				b.WriteString(between(world.Vertical, row, col-1, row, col))
			case x%2 == 1:
				b.WriteString(between(world.Horizontal, row-1, col, row, col))
			default:
				b.WriteString(corner(row, col))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

func (t *TUIRenderer) doorGlyph(o world.Orientation, d gameplay.DoorView) string {
	style := renderer.DoorStyle(d)
	var glyph string
	switch style {
	case renderer.StyleDoorSealed:
		glyph = IconDoorSealed
	case renderer.StyleDoorOpen:
		glyph = IconDoorOpen
	case renderer.StyleDoorMoving:
		glyph = IconDoorMovingV
		if o == world.Horizontal {
			glyph = IconDoorMovingH
		}
	default:
		glyph = IconDoorClosedV
		if o == world.Horizontal {
			glyph = IconDoorClosedH
		}
	}
	return t.StyleText(glyph, style)
}

func (t *TUIRenderer) bars(bars []entities.Bar) string {
	var b strings.Builder
	for _, bar := range bars {
		glyph := IconBarFull
		if bar == entities.BarUnassigned {
			glyph = IconBarEmpty
		}
		b.WriteString(t.StyleText(glyph, renderer.BarStyle(bar)))
	}
	return b.String()
}

func (t *TUIRenderer) statusLine(s *ship.Ship) string {
	return fmt.Sprintf("%s %s  %s %d  %s %d",
		locale.Get("LABEL_REACTOR"), t.bars(renderer.ReactorBars(s.ReactorSnapshot())),
		locale.Get("LABEL_HULL"), s.HullPoints(),
		locale.Get("LABEL_SHIELDS"), s.ShieldLayers(),
	)
}

func (t *TUIRenderer) systemLines(g *state.Game) []string {
	selected, _ := gameplay.SelectedSystem(g)
	names := g.Player.SystemNames()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		sys, err := g.Player.SystemSnapshot(name)
		if err != nil {
			continue
		}
		marker := " "
		if name == selected {
			marker = t.StyleText(IconSelected, renderer.StyleSelected)
		}
		label := t.StyleText(fmt.Sprintf("%-14s", name), renderer.SymbolStyle(sys.Symbol()))
		lines = append(lines, fmt.Sprintf("%s %s %s", marker, label, t.bars(sys.Bars())))
	}
	return lines
}

func (t *TUIRenderer) enemyLine(s *ship.Ship) string {
	return fmt.Sprintf("%s: %s  %s %d  %s %d",
		t.StyleText(locale.Get("LABEL_ENEMY"), renderer.StyleDenied), s.Name,
		locale.Get("LABEL_HULL"), s.HullPoints(),
		locale.Get("LABEL_SHIELDS"), s.ShieldLayers(),
	)
}

func (t *TUIRenderer) setInputError(msg string) {
	t.mu.Lock()
	t.inputError = msg
	t.mu.Unlock()
}

func (t *TUIRenderer) takeInputError() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := t.inputError
	t.inputError = ""
	return msg
}

func (t *TUIRenderer) hasInputError() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inputError != ""
}

// Run reads commands from in and drives loop until ctx is done or the player
// quits. The screen is only redrawn when something visible changed.
func (t *TUIRenderer) Run(ctx context.Context, loop *gameplay.Loop, in *os.File) error {
	g := loop.Game

	if fd := int(in.Fd()); term.IsTerminal(fd) {
		// The reader may still be blocked in raw mode when the loop ends.
		if st, err := term.GetState(fd); err == nil {
			defer term.Restore(fd, st)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go t.readInput(ctx, g, input.NewTerminalReader(in, t.out), gameplay.ParseContext(g.Player))

	t.RenderFrame(g, gameplay.Snapshot(g.Player))
	shown := strings.Join(g.Messages, "\n")

	err := loop.Run(ctx, func(f gameplay.Frame) error {
		messages := strings.Join(g.Messages, "\n")
		if f.Empty() && messages == shown && !t.hasInputError() {
			return nil
		}
		shown = messages
		t.RenderFrame(g, f)
		return nil
	})
	fmt.Fprint(t.out, lineEnd)
	return err
}

func (t *TUIRenderer) readInput(ctx context.Context, g *state.Game, r *input.TerminalReader, pctx input.ParseContext) {
	for ctx.Err() == nil {
		ev, err := r.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.setInputError(fmt.Sprintf(locale.Get("COMMAND_FAILED"), err))
			}
			g.Intents.Enqueue(input.Intent{Action: input.ActionQuit})
			return
		}
		intent, err := ev.Intent(pctx)
		if err != nil {
			t.setInputError(fmt.Sprintf(locale.Get("COMMAND_FAILED"), err))
			continue
		}
		g.Intents.Enqueue(intent)
	}
}
