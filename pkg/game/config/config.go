// Package config holds the simulation parameters and ship definitions.
// A Config is loaded once at startup and passed by value into every component;
// nothing reads parameters from package state.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"starship/pkg/engine/errs"
)

//go:embed ships.yaml
var builtin []byte

// General holds the tuning constants of doors, oxygen and power.
type General struct {
	DoorHeightPixel      int `yaml:"door_height_pixel"`
	DoorMinimumPixel     int `yaml:"door_minimum_pixel"`
	DoorTimePerPixelMs   int `yaml:"door_time_per_pixel_ms"`
	DoorLevelMax         int `yaml:"door_level_max"`
	OxygenMinimumPercent int `yaml:"oxygen_minimum_percent"`

	OxygenRefillPerPower   float64 `yaml:"oxygen_refill_per_power"`
	OxygenLossGeneral      float64 `yaml:"oxygen_loss_general"`
	OxygenLossSpace        float64 `yaml:"oxygen_loss_space"`
	OxygenEquilibriumSpeed float64 `yaml:"oxygen_equilibrium_speed"`
	OxygenGradientFactor   float64 `yaml:"oxygen_gradient_factor"`
	OxygenGradientCap      float64 `yaml:"oxygen_gradient_cap"`

	ShieldMaxLevel  int `yaml:"shield_max_level"`
	MaxReactorPower int `yaml:"max_reactor_power"`
}

// MaxDoorRetraction is the number of position steps between a closed and an open door.
func (g General) MaxDoorRetraction() int {
	return g.DoorHeightPixel - g.DoorMinimumPixel
}

// Loop configures the frame loop.
type Loop struct {
	MaxFramerate      int `yaml:"max_framerate"`
	FramerateReportMs int `yaml:"framerate_report_ms"`
	// FixedStepMs > 0 switches the simulation from frame-time steps to fixed steps.
	FixedStepMs int `yaml:"fixed_step_ms"`
}

// Logging configures the console logger.
type Logging struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

// Clonebay places the medbay or clonebay console inside its room.
type Clonebay struct {
	X           int `yaml:"x"`
	Y           int `yaml:"y"`
	Orientation int `yaml:"orientation"`
}

// SystemDefinition installs a system in a room.
type SystemDefinition struct {
	Room         int `yaml:"room"`
	PowerMax     int `yaml:"power_max"`
	PowerCurrent int `yaml:"power_current"`
	Manned       int `yaml:"manned"`
}

// ShipDefinition is everything needed to build a ship.
type ShipDefinition struct {
	Name            string                      `yaml:"name"`
	HullPoints      int                         `yaml:"hull_points"`
	ReactorPower    int                         `yaml:"reactor_power"`
	BackupPower     int                         `yaml:"backup_power"`
	WeaponSlots     int                         `yaml:"weapon_slots"`
	Clonebay        Clonebay                    `yaml:"clonebay"`
	Layout          [][]int                     `yaml:"layout"`
	DoorsVertical   [][]int                     `yaml:"doors_vertical"`
	DoorsHorizontal [][]int                     `yaml:"doors_horizontal"`
	Systems         map[string]SystemDefinition `yaml:"systems"`
}

// Config is the full parameter set.
type Config struct {
	General    General                   `yaml:"general"`
	Loop       Loop                      `yaml:"loop"`
	Logging    Logging                   `yaml:"logging"`
	PlayerShip string                    `yaml:"player_ship"`
	EnemyShip  string                    `yaml:"enemy_ship"`
	Ships      map[string]ShipDefinition `yaml:"ships"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("config: built-in ships.yaml: %v", err))
	}
	return cfg
}

// Parse decodes a YAML document into a fresh Config and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errs.Configurationf("decode yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML file and lays it over the built-in defaults. Keys missing from
// the file keep their default; a ship present in the file replaces the built-in one
// of the same name as a whole.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errs.Configurationf("decode %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Ship returns the named ship definition.
func (c Config) Ship(name string) (ShipDefinition, error) {
	def, ok := c.Ships[name]
	if !ok {
		return ShipDefinition{}, errs.Configurationf("unknown ship %q (have %v)", name, c.ShipNames())
	}
	return def, nil
}

// ShipNames lists the defined ships alphabetically.
func (c Config) ShipNames() []string {
	names := make([]string, 0, len(c.Ships))
	for name := range c.Ships {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks parameter ranges and that the selected ships exist.
// Layout and power consistency is checked when a ship is built.
func (c Config) Validate() error {
	g := c.General
	switch {
	case g.DoorMinimumPixel < 0 || g.DoorHeightPixel <= g.DoorMinimumPixel:
		return errs.Configurationf("door height %d must exceed door minimum %d", g.DoorHeightPixel, g.DoorMinimumPixel)
	case g.DoorTimePerPixelMs <= 0:
		return errs.Configurationf("door time per pixel must be positive, got %d", g.DoorTimePerPixelMs)
	case g.DoorLevelMax < 0:
		return errs.Configurationf("door level max must not be negative, got %d", g.DoorLevelMax)
	case g.OxygenEquilibriumSpeed < 0 || g.OxygenGradientCap < 0 || g.OxygenGradientFactor < 0:
		return errs.Configurationf("oxygen equilibrium parameters must not be negative")
	case g.MaxReactorPower <= 0:
		return errs.Configurationf("max reactor power must be positive, got %d", g.MaxReactorPower)
	case c.Loop.FixedStepMs < 0:
		return errs.Configurationf("fixed step must not be negative, got %d", c.Loop.FixedStepMs)
	}

	for _, name := range c.ShipNames() {
		def := c.Ships[name]
		if len(def.Layout) == 0 {
			return errs.Configurationf("ship %q has no layout", name)
		}
		if def.ReactorPower < 0 || def.ReactorPower > g.MaxReactorPower {
			return errs.Configurationf("ship %q reactor power %d outside 0..%d", name, def.ReactorPower, g.MaxReactorPower)
		}
		if def.BackupPower < 0 {
			return errs.Configurationf("ship %q backup power %d is negative", name, def.BackupPower)
		}
	}

	if _, ok := c.Ships[c.PlayerShip]; !ok {
		return errs.Configurationf("player ship %q is not defined", c.PlayerShip)
	}
	if c.EnemyShip != "" {
		if _, ok := c.Ships[c.EnemyShip]; !ok {
			return errs.Configurationf("enemy ship %q is not defined", c.EnemyShip)
		}
	}
	return nil
}
