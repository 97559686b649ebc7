package gamedata

import (
	"math/rand"
	"sort"
)

// SpeciesTable draws monster definitions in proportion to their spawn
// weights. Definitions with a weight of zero are never drawn.
type SpeciesTable struct {
	defs []ActorDef
	// bounds[i] is the exclusive upper end of defs[i]'s slice of the roll.
	bounds []int
}

// NewSpeciesTable builds a table over the given definitions.
func NewSpeciesTable(defs []ActorDef) *SpeciesTable {
	t := &SpeciesTable{}
	total := 0
	for _, d := range defs {
		if d.SpawnWeight <= 0 {
			continue
		}
		total += d.SpawnWeight
		t.defs = append(t.defs, d)
		t.bounds = append(t.bounds, total)
	}
	return t
}

// Pick rolls one definition, or nil if nothing can be drawn.
func (t *SpeciesTable) Pick(rng *rand.Rand) *ActorDef {
	if len(t.bounds) == 0 {
		return nil
	}
	roll := rng.Intn(t.bounds[len(t.bounds)-1])
	i := sort.SearchInts(t.bounds, roll+1)
	return &t.defs[i]
}
