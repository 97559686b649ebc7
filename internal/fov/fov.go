// Package fov computes the set of tiles visible from a point.
//
// The game core talks to a Service; Map is the bundled implementation and
// supports two algorithms: basic raycasting and recursive shadowcasting.
package fov

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Algorithm selects how visibility is computed.
type Algorithm int

const (
	// AlgorithmBasic casts Bresenham rays from the origin to the edge of the radius.
	AlgorithmBasic Algorithm = iota
	// AlgorithmShadow is recursive shadowcasting over eight octants.
	AlgorithmShadow
)

// String returns the configuration name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBasic:
		return "basic"
	case AlgorithmShadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts a configuration name into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "":
		return AlgorithmBasic, nil
	case "shadow", "shadowcast":
		return AlgorithmShadow, nil
	default:
		return AlgorithmBasic, fmt.Errorf("unknown fov algorithm %q", s)
	}
}

// Service is the visibility capability consumed by the game loop.
type Service interface {
	// Prime records the static topology of one tile.
	Prime(x, y int, transparent, walkable bool)
	// Recompute replaces the visible set with what can be seen from the origin.
	// A radius of zero or less means unlimited.
	Recompute(originX, originY, radius int, lightWalls bool, algo Algorithm)
	// IsVisible reports whether the tile was visible at the last Recompute.
	IsVisible(x, y int) bool
}

// Point is a tile coordinate in the visible set.
type Point struct {
	X, Y int
}

// Map is a grid-backed Service.
type Map struct {
	width       int
	height      int
	transparent []bool
	walkable    []bool
	visible     mapset.Set[Point]
}

// NewMap creates an opaque, unwalkable grid with nothing visible.
func NewMap(width, height int) *Map {
	return &Map{
		width:       width,
		height:      height,
		transparent: make([]bool, width*height),
		walkable:    make([]bool, width*height),
		visible:     mapset.New[Point](),
	}
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Prime records whether a tile lets light and entities through.
func (m *Map) Prime(x, y int, transparent, walkable bool) {
	if !m.inBounds(x, y) {
		return
	}
	i := y*m.width + x
	m.transparent[i] = transparent
	m.walkable[i] = walkable
}

// IsTransparent returns the primed transparency of a tile.
func (m *Map) IsTransparent(x, y int) bool {
	return m.inBounds(x, y) && m.transparent[y*m.width+x]
}

// IsWalkable returns the primed walkability of a tile.
func (m *Map) IsWalkable(x, y int) bool {
	return m.inBounds(x, y) && m.walkable[y*m.width+x]
}

// IsVisible reports whether the tile was visible at the last Recompute.
func (m *Map) IsVisible(x, y int) bool {
	return m.visible.Has(Point{X: x, Y: y})
}

// VisibleCount returns the size of the visible set.
func (m *Map) VisibleCount() int {
	return m.visible.Size()
}

// Recompute replaces the visible set with what can be seen from the origin.
func (m *Map) Recompute(originX, originY, radius int, lightWalls bool, algo Algorithm) {
	m.visible = mapset.New[Point]()
	if !m.inBounds(originX, originY) {
		return
	}
	if radius <= 0 {
		radius = max(m.width, m.height)
	}

	m.visible.Put(Point{X: originX, Y: originY})

	switch algo {
	case AlgorithmShadow:
		m.shadowcast(originX, originY, radius, lightWalls)
	default:
		m.raycast(originX, originY, radius, lightWalls)
	}
}

// light marks a tile visible if walls may be lit or the tile is transparent.
func (m *Map) light(x, y int, lightWalls bool) {
	if lightWalls || m.IsTransparent(x, y) {
		m.visible.Put(Point{X: x, Y: y})
	}
}
