// Package generator builds random ship definitions.
package generator

import (
	"math/rand"

	"starship/pkg/game/config"
)

// ShipGenerator is an interface for ship layout algorithms.
type ShipGenerator interface {
	Generate(rng *rand.Rand) (config.ShipDefinition, error)
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{Rows: 4, Cols: 8}
)

// DefaultGenerator is the default ship generator
var DefaultGenerator ShipGenerator = BSP
