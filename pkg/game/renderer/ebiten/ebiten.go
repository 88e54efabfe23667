package ebiten

import (
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"starship/pkg/game/entities"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New(log *slog.Logger) *EbitenRenderer {
	if log == nil {
		log = slog.Default()
	}
	return &EbitenRenderer{
		log:            log.With("component", "ebiten"),
		windowWidth:    800,
		windowHeight:   600,
		systemHitBoxes: make(map[entities.SystemName]image.Rectangle),
	}
}

// Init loads the font. Without it the window stays blank, so a failure is
// logged and Run refuses to start.
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		e.log.Error("font setup failed", "err", err)
	}
}

// Clear is a no-op: Draw fills the background every frame.
func (e *EbitenRenderer) Clear() {}

// StyleText returns text unchanged; colours are applied when drawing.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage shows msg in the header until the next one.
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshot.notice = msg
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// Run opens the window and drives loop from Ebiten's update callback until
// the window closes or the player quits.
func (e *EbitenRenderer) Run(loop *gameplay.Loop) error {
	if e.face == nil {
		return errors.New("ebiten: no font loaded")
	}
	g := loop.Game
	e.loop = loop
	e.slots = renderer.DoorSlots(g.Player)
	e.parseCtx = gameplay.ParseContext(g.Player)

	grid := g.Player.Grid()
	e.rows, e.cols = grid.Rows(), grid.Cols()
	e.windowWidth = mapMargin*2 + e.cols*tileSize + panelWidth
	e.windowHeight = max(minHeight, headerHeight+e.rows*tileSize+mapMargin*2+8*lineHeight)

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(g.Player.Name)
	ebiten.SetTPS(int(time.Second / loop.FrameDuration()))

	e.RenderFrame(g, gameplay.Frame{})
	e.lastUpdate = time.Now()

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and steps the simulation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("window opened", "width", w, "height", h)
	}

	g := e.loop.Game
	e.handleInput(g)

	// Whole milliseconds only; the remainder carries into the next update.
	dt := int(time.Since(e.lastUpdate) / time.Millisecond)
	e.lastUpdate = e.lastUpdate.Add(time.Duration(dt) * time.Millisecond)
	e.RenderFrame(g, e.loop.Tick(dt))

	if g.Quit {
		return ebiten.Termination
	}
	return nil
}
