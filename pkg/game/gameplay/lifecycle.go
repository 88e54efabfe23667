package gameplay

import (
	"fmt"
	"log/slog"

	"starship/pkg/game/config"
	"starship/pkg/game/ship"
	"starship/pkg/game/state"
)

// BuildGame creates the player ship and, if configured, the enemy ship.
func BuildGame(cfg config.Config, log *slog.Logger) (*state.Game, error) {
	if log == nil {
		log = slog.Default()
	}

	player, err := buildShip(cfg, cfg.PlayerShip, log)
	if err != nil {
		return nil, fmt.Errorf("player ship: %w", err)
	}

	var enemy *ship.Ship
	if cfg.EnemyShip != "" {
		enemy, err = buildShip(cfg, cfg.EnemyShip, log)
		if err != nil {
			return nil, fmt.Errorf("enemy ship: %w", err)
		}
	}

	g := state.NewGame(cfg, player, enemy)
	logMessage(g, "WELCOME", player.Name)
	if enemy != nil {
		logMessage(g, "ENEMY_SIGHTED", enemy.Name)
	}
	return g, nil
}

func buildShip(cfg config.Config, name string, log *slog.Logger) (*ship.Ship, error) {
	def, err := cfg.Ship(name)
	if err != nil {
		return nil, err
	}
	return ship.New(def, cfg.General, log)
}
