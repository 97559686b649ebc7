package world

// Point is an integer map coordinate.
type Point struct {
	X, Y int
}

// Map is a fixed-size grid of tiles.
//
// Tiles can only move from wall to floor (CarveFloor) and from unexplored
// to explored (MarkExplored). Coordinates outside the grid read as
// unexplored wall and ignore writes.
type Map struct {
	width  int
	height int
	tiles  [][]Tile
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = wallTile()
		}
	}
	return &Map{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds returns true if the coordinate lies inside the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Tile returns a copy of the tile at the given position.
func (m *Map) Tile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return wallTile()
	}
	return m.tiles[y][x]
}

// CarveFloor turns the tile at the given position into floor.
// Carving a floor tile again is a no-op; the explored flag is preserved.
func (m *Map) CarveFloor(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	t := &m.tiles[y][x]
	t.Blocked = false
	t.BlocksSight = false
}

// IsWalkable returns true if an entity may stand on the tile.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return !m.tiles[y][x].Blocked
}

// IsTransparent returns true if the tile does not block sight.
func (m *Map) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return !m.tiles[y][x].BlocksSight
}

// IsExplored returns true if the tile has ever been visible.
func (m *Map) IsExplored(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.tiles[y][x].Explored
}

// MarkExplored records that the tile has been seen. There is no inverse.
func (m *Map) MarkExplored(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y][x].Explored = true
}

// FloorCount returns the number of walkable tiles.
func (m *Map) FloorCount() int {
	count := 0
	for y := range m.tiles {
		for x := range m.tiles[y] {
			if !m.tiles[y][x].Blocked {
				count++
			}
		}
	}
	return count
}
