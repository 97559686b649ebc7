package game

import (
	"github.com/samdwyer/rogue/internal/fov"
	"github.com/samdwyer/rogue/internal/spawn"
	"github.com/samdwyer/rogue/internal/world"
)

// DefaultTorchRadius is how far the player can see.
const DefaultTorchRadius = 10

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Gen             world.GenParams
	MaxRoomMonsters int

	TorchRadius   int
	FOVAlgorithm  fov.Algorithm
	FOVLightWalls bool
}

// DefaultConfig returns the classic 80x45 setup with a random seed.
func DefaultConfig() Config {
	return Config{
		Gen:             world.DefaultGenParams(),
		MaxRoomMonsters: spawn.DefaultMaxRoomMonsters,
		TorchRadius:     DefaultTorchRadius,
		FOVAlgorithm:    fov.AlgorithmBasic,
		FOVLightWalls:   true,
	}
}
