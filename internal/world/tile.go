// Package world provides the tile map, room geometry, and dungeon generation.
package world

// Tile is the terrain state of a single map cell.
type Tile struct {
	Blocked     bool // Movement onto the tile is illegal
	BlocksSight bool // The tile is opaque to the FOV service
	Explored    bool // The player has seen the tile at least once
}

// wallTile returns the tile every cell starts as.
func wallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// IsWall returns true if the tile blocks both movement and sight.
func (t Tile) IsWall() bool {
	return t.Blocked && t.BlocksSight
}
