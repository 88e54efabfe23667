package state

import (
	"starship/pkg/engine/input"
	"starship/pkg/game/config"
	"starship/pkg/game/ship"
)

// IntentQueueSize bounds the intents buffered between two steps.
const IntentQueueSize = 64

// Game represents the running simulation: the ships, the intents waiting to be
// applied and the player-facing message log.
type Game struct {
	Config config.Config

	Player *ship.Ship
	Enemy  *ship.Ship

	Intents *input.Queue

	Messages []string

	Paused bool
	Quit   bool

	// Selected indexes Player.SystemNames() for power intents without a target.
	Selected int

	ElapsedMs int
}

// NewGame creates a game for already built ships. Enemy may be nil.
func NewGame(cfg config.Config, player, enemy *ship.Ship) *Game {
	return &Game{
		Config:   cfg,
		Player:   player,
		Enemy:    enemy,
		Intents:  input.NewQueue(IntentQueueSize),
		Messages: make([]string, 0),
	}
}

// Ships returns the player ship followed by the enemy ship, if any.
func (g *Game) Ships() []*ship.Ship {
	if g.Enemy == nil {
		return []*ship.Ship{g.Player}
	}
	return []*ship.Ship{g.Player, g.Enemy}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
