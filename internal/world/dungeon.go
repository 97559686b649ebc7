package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Default room placement parameters
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
)

// GenParams controls room placement.
//
// Room sides are drawn uniformly from [RoomMinSize, RoomMaxSize], with the
// upper end clamped to Width-1 and Height-1 so a room's wall ring always
// fits. When even RoomMinSize does not fit, generation yields no rooms.
type GenParams struct {
	Width       int
	Height      int
	MaxRooms    int // Placement attempts; the accepted count may be lower
	RoomMinSize int
	RoomMaxSize int
}

// DefaultGenParams returns the standard 80x45 layout parameters.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate reports parameters that cannot describe any map.
// Parameters that are merely too large for the map are accepted and
// produce a layout with no rooms.
func (p GenParams) Validate() error {
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %dx%d", p.Width, p.Height))
	}
	if p.MaxRooms < 0 {
		errs = append(errs, fmt.Errorf("max rooms must not be negative, got %d", p.MaxRooms))
	}
	if p.Width > 0 && p.Height > 0 && p.MaxRooms > p.Width*p.Height {
		errs = append(errs, fmt.Errorf("max rooms %d exceeds map area %d", p.MaxRooms, p.Width*p.Height))
	}
	if p.RoomMinSize <= 0 {
		errs = append(errs, fmt.Errorf("room min size must be positive, got %d", p.RoomMinSize))
	}
	if p.RoomMinSize > p.RoomMaxSize {
		errs = append(errs, fmt.Errorf("room min size %d exceeds max size %d", p.RoomMinSize, p.RoomMaxSize))
	}
	return errors.Join(errs...)
}

// Populator fills an accepted room with entities. It runs once per room,
// right after the room and its corridor are carved.
type Populator interface {
	Populate(ctx context.Context, room Rect, m *Map)
}

// Layout is the result of a generation run.
type Layout struct {
	Map      *Map
	Rooms    []Rect // Accepted rooms in acceptance order
	Start    Point  // Center of the first accepted room
	HasStart bool   // False when no room could be placed
	Rejected int    // Attempts discarded because they intersected a room
}

// Generator builds maps from randomly placed rooms joined by L-shaped corridors.
type Generator struct {
	params  GenParams
	rng     *rand.Rand
	pop     Populator
	onStart func(Point)
	logger  *slog.Logger
}

// NewGenerator creates a generator. A nil rng is seeded from the clock and
// a nil populator leaves rooms empty.
func NewGenerator(params GenParams, rng *rand.Rand, pop Populator) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		params: params,
		rng:    rng,
		pop:    pop,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for generation diagnostics.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// WithStartHook registers a callback that receives the start position as
// soon as the first room is carved, before that room is populated.
func (g *Generator) WithStartHook(fn func(Point)) *Generator {
	g.onStart = fn
	return g
}

// Generate carves a new map.
func (g *Generator) Generate(ctx context.Context) Layout {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	p := g.params
	layout := Layout{
		Map:   NewMap(p.Width, p.Height),
		Rooms: make([]Rect, 0),
	}

	// A room needs its wall ring inside the grid: x+w <= Width-1.
	maxW := min(p.RoomMaxSize, p.Width-1)
	maxH := min(p.RoomMaxSize, p.Height-1)
	fits := maxW >= p.RoomMinSize && maxH >= p.RoomMinSize && p.RoomMinSize > 0

	if !fits {
		g.logger.Warn("room size does not fit map, generating empty layout",
			"width", p.Width, "height", p.Height,
			"room_min_size", p.RoomMinSize, "room_max_size", p.RoomMaxSize)
	}

	for i := 0; fits && i < p.MaxRooms; i++ {
		if ctx.Err() != nil {
			g.logger.Warn("generation cancelled", "attempts", i, "rooms", len(layout.Rooms))
			break
		}
		w := p.RoomMinSize + g.rng.Intn(maxW-p.RoomMinSize+1)
		h := p.RoomMinSize + g.rng.Intn(maxH-p.RoomMinSize+1)
		x := g.rng.Intn(p.Width - w)
		y := g.rng.Intn(p.Height - h)
		room := NewRect(x, y, w, h)

		if intersectsAny(room, layout.Rooms) {
			layout.Rejected++
			continue
		}

		carveRoom(layout.Map, room)
		cx, cy := room.Center()

		if len(layout.Rooms) == 0 {
			layout.Start = Point{X: cx, Y: cy}
			layout.HasStart = true
			if g.onStart != nil {
				g.onStart(layout.Start)
			}
		} else {
			px, py := layout.Rooms[len(layout.Rooms)-1].Center()
			horizontalFirst := g.rng.Intn(2) == 0
			carveCorridor(layout.Map, Point{X: px, Y: py}, Point{X: cx, Y: cy}, horizontalFirst)
		}

		if g.pop != nil {
			g.pop.Populate(ctx, room, layout.Map)
		}
		layout.Rooms = append(layout.Rooms, room)

		g.logger.Debug("room accepted",
			"index", len(layout.Rooms)-1,
			"x1", room.X1, "y1", room.Y1, "x2", room.X2, "y2", room.Y2)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.max_rooms", p.MaxRooms),
		attribute.Int("dungeon.room_count", len(layout.Rooms)),
		attribute.Int("dungeon.rejected_rooms", layout.Rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return layout
}

// intersectsAny returns true if room intersects one of the accepted rooms.
func intersectsAny(room Rect, accepted []Rect) bool {
	for _, other := range accepted {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom turns the interior of the room into floor, leaving the outer ring.
func carveRoom(m *Map, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			m.CarveFloor(x, y)
		}
	}
}

// carveCorridor joins two points with a one-tile-wide L-shaped tunnel.
// The elbow sits at (to.X, from.Y) when horizontalFirst, else at (from.X, to.Y).
func carveCorridor(m *Map, from, to Point, horizontalFirst bool) {
	if horizontalFirst {
		carveHorizontalTunnel(m, from.X, to.X, from.Y)
		carveVerticalTunnel(m, from.Y, to.Y, to.X)
	} else {
		carveVerticalTunnel(m, from.Y, to.Y, from.X)
		carveHorizontalTunnel(m, from.X, to.X, to.Y)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func carveHorizontalTunnel(m *Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.CarveFloor(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func carveVerticalTunnel(m *Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.CarveFloor(x, y)
	}
}
