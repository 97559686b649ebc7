package entity

// Roster owns the player and every monster in a session.
// The player is held by an explicit handle and can never be removed.
type Roster struct {
	player   *Entity
	monsters []*Entity
}

// NewRoster creates a roster around the given player.
func NewRoster(player *Entity) *Roster {
	return &Roster{player: player}
}

// Player returns the player entity.
func (r *Roster) Player() *Entity {
	return r.player
}

// Add appends a monster. Adding the player or nil is ignored.
func (r *Roster) Add(e *Entity) {
	if e == nil || e == r.player {
		return
	}
	r.monsters = append(r.monsters, e)
}

// Remove drops a monster from the roster and reports whether it was present.
func (r *Roster) Remove(e *Entity) bool {
	for i, m := range r.monsters {
		if m == e {
			r.monsters = append(r.monsters[:i], r.monsters[i+1:]...)
			return true
		}
	}
	return false
}

// Monsters returns the monsters in insertion order.
func (r *Roster) Monsters() []*Entity {
	return r.monsters
}

// All returns the player followed by the monsters in insertion order.
func (r *Roster) All() []*Entity {
	all := make([]*Entity, 0, len(r.monsters)+1)
	all = append(all, r.player)
	return append(all, r.monsters...)
}

// Len returns the number of entities including the player.
func (r *Roster) Len() int {
	return len(r.monsters) + 1
}

// BlockingAt returns the first blocking entity on the tile, or nil.
func (r *Roster) BlockingAt(x, y int) *Entity {
	if r.player != nil && r.player.Blocks && r.player.At(x, y) {
		return r.player
	}
	for _, m := range r.monsters {
		if m.Blocks && m.At(x, y) {
			return m
		}
	}
	return nil
}
