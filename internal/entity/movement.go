package entity

// Terrain answers whether a tile can be entered. *world.Map satisfies it.
type Terrain interface {
	IsWalkable(x, y int) bool
}

// IsBlocked returns true if the tile is not walkable or a blocking
// entity stands on it.
func IsBlocked(t Terrain, r *Roster, x, y int) bool {
	if !t.IsWalkable(x, y) {
		return true
	}
	return r.BlockingAt(x, y) != nil
}

// MoveBy moves the entity by (dx, dy) if the destination is not blocked.
// A blocked move leaves the entity where it is. Returns whether it moved.
func MoveBy(t Terrain, r *Roster, e *Entity, dx, dy int) bool {
	x, y := e.X+dx, e.Y+dy
	if IsBlocked(t, r, x, y) {
		return false
	}
	e.SetPosition(x, y)
	return true
}
