package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starship/pkg/engine/errs"
	"starship/pkg/engine/logging"
	"starship/pkg/game/gameplay"
	"starship/pkg/game/generator"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-renderer", "headless", "-seconds", "3", "-enemy", "none", "-fixed-step", "20"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.renderer != "headless" || o.seconds != 3 || o.enemy != "none" || o.fixedStep != 20 {
		t.Errorf("parseFlags() = %+v", o)
	}

	o, err = parseFlags([]string{"-bind", "pause=z", "-bind", "help=x", "-keys"})
	if err != nil {
		t.Fatalf("parseFlags(-bind): %v", err)
	}
	if len(o.binds) != 2 || o.binds[1] != "help=x" || !o.listKeys {
		t.Errorf("binds = %v, keys = %v", o.binds, o.listKeys)
	}

	if _, err := parseFlags([]string{"-renderer", "opengl"}); err == nil {
		t.Errorf("parseFlags(-renderer opengl) succeeded")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	o, _ := parseFlags([]string{"-ship", "rebel_fighter", "-enemy", "none", "-fixed-step", "25", "-log-level", "debug"})
	cfg, err := loadConfig(o)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.PlayerShip != "rebel_fighter" || cfg.EnemyShip != "" {
		t.Errorf("ships = %q/%q, want rebel_fighter and none", cfg.PlayerShip, cfg.EnemyShip)
	}
	if cfg.Loop.FixedStepMs != 25 || cfg.Logging.Level != "debug" {
		t.Errorf("loop/logging = %+v/%+v", cfg.Loop, cfg.Logging)
	}

	o, _ = parseFlags([]string{"-ship", "ghost"})
	if _, err := loadConfig(o); !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("loadConfig(unknown ship) error = %v, want ErrConfiguration", err)
	}
}

func TestLoadConfig_RandomShip(t *testing.T) {
	o, _ := parseFlags([]string{"-ship", "random", "-seed", "9"})
	cfg, err := loadConfig(o)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.PlayerShip != "random" || len(cfg.Ships["random"].Layout) != generator.BSP.Rows {
		t.Errorf("player ship = %q with layout %v", cfg.PlayerShip, cfg.Ships["random"].Layout)
	}
	if _, err := gameplay.BuildGame(cfg, logging.Discard()); err != nil {
		t.Errorf("BuildGame(random): %v", err)
	}
}

func TestRunHeadless(t *testing.T) {
	o, _ := parseFlags([]string{"-renderer", "headless"})
	cfg, err := loadConfig(o)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	g, err := gameplay.BuildGame(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}

	var out bytes.Buffer
	if err := runHeadless(gameplay.NewLoop(g, logging.Discard()), 2, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	text := out.String()
	for _, want := range []string{"after 2000 ms", "reactor", "room  1", "open connections:"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary is missing %q:\n%s", want, text)
		}
	}

	if err := runHeadless(gameplay.NewLoop(g, logging.Discard()), 0, &out); err == nil {
		t.Errorf("runHeadless(0 seconds) succeeded")
	}
}

func TestRun_DumpLayout(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "layout.txt")
	if err := run([]string{"-dump-layout", path, "-log-file", filepath.Join(t.TempDir(), "run.log")}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "--- Grid ---") {
		t.Errorf("layout dump has no grid section:\n%s", data)
	}
}

func TestRun_BadBinding(t *testing.T) {
	if err := run([]string{"-bind", "warp=w", "-keys"}); !errors.Is(err, errs.ErrInvalidOperation) {
		t.Errorf("run(-bind warp=w) error = %v, want ErrInvalidOperation", err)
	}
}
