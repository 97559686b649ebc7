// Package entity provides positioned actors, the roster that owns them,
// and the collision rules for moving them.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/gamedata"
)

// Entity is a positioned actor: the player or a monster.
type Entity struct {
	Name   string      // Display name (e.g., "Orc")
	Glyph  rune        // Display symbol
	Color  tcell.Color // Foreground color, passed through to the renderer
	X, Y   int         // Position on the map
	Blocks bool        // Occupies its tile for collision purposes
	Alive  bool
}

// New creates a living entity at the given position.
func New(name string, glyph rune, color tcell.Color, x, y int, blocks bool) *Entity {
	return &Entity{
		Name:   name,
		Glyph:  glyph,
		Color:  color,
		X:      x,
		Y:      y,
		Blocks: blocks,
		Alive:  true,
	}
}

// NewFromDef creates a living entity from a data-driven definition.
func NewFromDef(def *gamedata.ActorDef, x, y int) *Entity {
	return New(def.Name, def.GlyphRune(), def.TCellColor(), x, y, def.Blocks)
}

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// SetPosition updates the entity's position.
func (e *Entity) SetPosition(x, y int) {
	e.X = x
	e.Y = y
}

// At returns true if the entity stands on the given tile.
func (e *Entity) At(x, y int) bool {
	return e.X == x && e.Y == y
}
