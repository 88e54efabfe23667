package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"math/rand"
	"os/signal"
	"strings"
	"time"

	"starship/pkg/engine/logging"
	"starship/pkg/game/config"
	"starship/pkg/game/devtools"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/generator"
	"starship/pkg/game/menu"
	"starship/pkg/game/renderer"
	ebitenrenderer "starship/pkg/game/renderer/ebiten"
	"starship/pkg/game/renderer/tui"
	"starship/pkg/game/state"
)

type options struct {
	configPath string
	ship       string
	enemy      string
	renderer   string
	seconds    int
	logLevel   string
	logFile    string
	fixedStep  int
	seed       int64
	listShips  bool
	dumpLayout string
	listKeys   bool
	binds      bindFlags
}

// bindFlags collects repeated -bind values.
type bindFlags []string

func (b *bindFlags) String() string { return strings.Join(*b, ",") }

func (b *bindFlags) Set(v string) error {
	*b = append(*b, v)
	return nil
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("starship", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML file overriding the built-in configuration")
	fs.StringVar(&o.ship, "ship", "", "player ship (see -list-ships), or \"random\"")
	fs.Int64Var(&o.seed, "seed", 0, "seed for -ship random, 0 picks one from the clock")
	fs.StringVar(&o.enemy, "enemy", "", "enemy ship, or \"none\"")
	fs.StringVar(&o.renderer, "renderer", "tui", "display: tui, ebiten or headless")
	fs.IntVar(&o.seconds, "seconds", 10, "simulated seconds for the headless renderer")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr")
	fs.IntVar(&o.fixedStep, "fixed-step", -1, "fixed simulation step in ms, 0 follows the frame time")
	fs.BoolVar(&o.listShips, "list-ships", false, "list the configured ships and exit")
	fs.StringVar(&o.dumpLayout, "dump-layout", "", "write the player ship layout to this file and exit")
	fs.BoolVar(&o.listKeys, "keys", false, "list the key bindings and exit")
	fs.Var(&o.binds, "bind", "rebind a key as action=code, may be repeated")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch o.renderer {
	case "tui", "ebiten", "headless":
	default:
		return o, fmt.Errorf("unknown renderer %q", o.renderer)
	}
	return o, nil
}

const randomShip = "random"

// loadConfig applies the flag overrides to the configuration file or the
// built-in defaults.
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.ship == randomShip {
		seed := o.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		def, err := generator.DefaultGenerator.Generate(rand.New(rand.NewSource(seed)))
		if err != nil {
			return cfg, err
		}
		cfg.Ships[randomShip] = def
	}
	if o.ship != "" {
		cfg.PlayerShip = o.ship
	}
	switch o.enemy {
	case "":
	case "none":
		cfg.EnemyShip = ""
	default:
		cfg.EnemyShip = o.enemy
	}
	if o.fixedStep >= 0 {
		cfg.Loop.FixedStepMs = o.fixedStep
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "starship:", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	if o.listShips {
		for _, name := range cfg.ShipNames() {
			fmt.Printf("%-16s %s\n", name, cfg.Ships[name].Name)
		}
		return nil
	}

	for _, b := range o.binds {
		if _, err := menu.Rebind(b); err != nil {
			return err
		}
	}
	if o.listKeys {
		for _, label := range menu.Labels() {
			fmt.Println(label)
		}
		return nil
	}

	var logOut io.Writer = os.Stderr
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(logOut, logging.Config{
		Level: logging.ParseLevel(cfg.Logging.Level),
		Color: cfg.Logging.Color && o.logFile == "",
	})
	slog.SetDefault(log)

	g, err := gameplay.BuildGame(cfg, log)
	if err != nil {
		return err
	}
	if o.dumpLayout != "" {
		path, err := devtools.DumpLayoutToFile(g.Player, o.dumpLayout)
		if err != nil {
			return fmt.Errorf("dump layout: %w", err)
		}
		log.Info("layout dumped", "path", path)
		return nil
	}

	loop := gameplay.NewLoop(g, log)
	log.Info("simulation ready",
		"player", g.Player.Name,
		"enemy", enemyName(g),
		"renderer", o.renderer,
		"fixed_step_ms", cfg.Loop.FixedStepMs,
	)

	switch o.renderer {
	case "headless":
		return runHeadless(loop, o.seconds, os.Stdout)

	case "ebiten":
		r := ebitenrenderer.New(log)
		renderer.SetRenderer(r)
		renderer.Init()
		return r.Run(loop)

	default:
		r := tui.New(os.Stdout)
		renderer.SetRenderer(r)
		renderer.Init()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return r.Run(ctx, loop, os.Stdin)
	}
}

// runHeadless simulates seconds of game time without waiting and prints the
// state of the player ship.
func runHeadless(loop *gameplay.Loop, seconds int, out io.Writer) error {
	if seconds <= 0 {
		return fmt.Errorf("seconds must be positive, got %d", seconds)
	}
	loop.RunFor(seconds * 1000)

	g := loop.Game
	s := g.Player
	fmt.Fprintf(out, "%s after %d ms\n", s.Name, g.ElapsedMs)

	r := s.ReactorSnapshot()
	fmt.Fprintf(out, "reactor %d/%d free, hull %d, shields %d\n", r.PowerAvailable, r.Total(), s.HullPoints(), s.ShieldLayers())

	for _, room := range s.Rooms() {
		label := ""
		if room.HasSystem() {
			label = " " + room.System.String()
		}
		fmt.Fprintf(out, "room %2d%-15s oxygen %6.2f\n", room.ID, label, room.Oxygen())
	}

	var open []string
	for _, c := range s.OpenConnections() {
		open = append(open, fmt.Sprintf("%d-%d", c.Low, c.High))
	}
	fmt.Fprintf(out, "open connections: %s\n", strings.Join(open, " "))

	for _, msg := range g.Messages {
		fmt.Fprintln(out, msg)
	}
	return nil
}

func enemyName(g *state.Game) string {
	if g.Enemy == nil {
		return "none"
	}
	return g.Enemy.Name
}
