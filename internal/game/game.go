package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/fov"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/spawn"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/world"
)

// Deps are the collaborators a game needs. Renderer and Input are required;
// the rest default when nil. Tracer defaults to the global provider.
type Deps struct {
	Renderer Renderer
	Input    InputSource

	// FOV defaults to a fov.Map sized to the dungeon.
	FOV     fov.Service
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	Tracer  trace.Tracer
}

// Game holds the entire game state.
type Game struct {
	cfg  Config
	seed int64

	renderer Renderer
	input    InputSource
	fov      fov.Service
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   trace.Tracer

	level  *world.Map
	rooms  []world.Rect
	roster *entity.Roster
	player *entity.Entity

	state State
	prev  world.Point
	turns int
}

// New generates a dungeon, places the player and primes the field of view.
func New(cfg Config, deps Deps) (*Game, error) {
	if deps.Renderer == nil {
		return nil, errors.New("game: renderer is required")
	}
	if deps.Input == nil {
		return nil, errors.New("game: input source is required")
	}
	if err := cfg.Gen.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	actors, err := gamedata.LoadActors()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		seed:     cfg.Seed,
		renderer: deps.Renderer,
		input:    deps.Input,
		fov:      deps.FOV,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		tracer:   deps.Tracer,
		state:    StateRunning,
		prev:     world.Point{X: -1, Y: -1},
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.metrics == nil {
		g.metrics = telemetry.DefaultMetrics()
	}
	if g.tracer == nil {
		g.tracer = telemetry.Tracer("game")
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(g.seed))

	g.player = entity.NewFromDef(&actors.Player, 0, 0)
	g.roster = entity.NewRoster(g.player)

	ctx, span := g.tracer.Start(context.Background(), "game.init")
	defer span.End()

	pop := spawn.NewPopulator(rng, gamedata.NewSpeciesTable(actors.Monsters), g.roster, cfg.MaxRoomMonsters).
		WithMetrics(g.metrics).
		WithLogger(g.logger)

	// The player must be in place before the first room is populated so
	// that no monster spawns on the start tile.
	layout := world.NewGenerator(cfg.Gen, rng, pop).
		WithLogger(g.logger).
		WithStartHook(func(p world.Point) { g.player.SetPosition(p.X, p.Y) }).
		Generate(ctx)

	g.level = layout.Map
	g.rooms = layout.Rooms

	if layout.HasStart {
		span.SetAttributes(
			attribute.Int("dungeon.rooms", len(layout.Rooms)),
			attribute.Int("player.start_x", layout.Start.X),
			attribute.Int("player.start_y", layout.Start.Y),
		)
	} else {
		span.SetAttributes(
			attribute.Int("dungeon.rooms", 0),
			attribute.String("warning", "no rooms generated, player not placed"),
		)
		g.logger.Warn("no rooms generated, player left unplaced",
			"width", cfg.Gen.Width, "height", cfg.Gen.Height)
	}

	if g.fov == nil {
		g.fov = fov.NewMap(g.level.Width(), g.level.Height())
	}
	for y := 0; y < g.level.Height(); y++ {
		for x := 0; x < g.level.Width(); x++ {
			g.fov.Prime(x, y, g.level.IsTransparent(x, y), g.level.IsWalkable(x, y))
		}
	}

	g.logger.Info("game ready",
		"seed", g.seed,
		"rooms", len(g.rooms),
		"monsters", len(g.roster.Monsters()),
		"fov", cfg.FOVAlgorithm.String())

	return g, nil
}

// Run executes the main game loop until the player quits, the renderer
// closes or ctx is cancelled. The renderer is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.renderer.Close()

	for g.state == StateRunning {
		if err := ctx.Err(); err != nil {
			g.state = StateTerminated
			return err
		}
		if g.renderer.Closed() {
			g.state = StateTerminated
			break
		}
		g.Turn(ctx)
	}

	g.logger.Info("game over", "turns", g.turns)
	return nil
}

// Turn renders one frame and then handles a single key press.
func (g *Game) Turn(ctx context.Context) {
	if g.state != StateRunning {
		return
	}
	g.turns++

	ctx, span := g.tracer.Start(ctx, "game.turn",
		trace.WithAttributes(attribute.Int("turn", g.turns)))
	defer span.End()

	g.renderer.Clear()

	px, py := g.player.Position()
	pos := world.Point{X: px, Y: py}
	recompute := pos != g.prev
	if recompute {
		g.fov.Recompute(px, py, g.cfg.TorchRadius, g.cfg.FOVLightWalls, g.cfg.FOVAlgorithm)
		g.metrics.FOVRecomputes.Add(ctx, 1)
	}

	g.drawMap()
	g.drawEntities()
	g.renderer.Flush()
	g.prev = pos

	moved := g.handleKey(ctx, g.input.WaitForKey(ctx))

	span.SetAttributes(
		attribute.Bool("moved", moved),
		attribute.Bool("fov_recomputed", recompute),
	)
	g.metrics.Turns.Add(ctx, 1)
}

func (g *Game) drawMap() {
	for y := 0; y < g.level.Height(); y++ {
		for x := 0; x < g.level.Width(); x++ {
			visible := g.fov.IsVisible(x, y)
			if visible {
				g.level.MarkExplored(x, y)
			}
			if g.level.IsExplored(x, y) {
				wall := !g.level.IsTransparent(x, y)
				g.renderer.SetBackground(x, y, TileColor(visible, wall))
			}
		}
	}
}

func (g *Game) drawEntities() {
	for _, e := range g.roster.All() {
		if g.fov.IsVisible(e.X, e.Y) {
			g.renderer.DrawGlyph(e.X, e.Y, e.Glyph, e.Color)
		}
	}
}

// handleKey applies a key press and reports whether the player moved.
func (g *Game) handleKey(ctx context.Context, key Key) bool {
	switch key.Code {
	case KeyEnter:
		if key.Alt {
			g.renderer.ToggleFullscreen()
		}
	case KeyEscape, KeyClosed:
		g.state = StateTerminated
	case KeyRune:
		switch key.Rune {
		case 'q', 'Q':
			g.state = StateTerminated
		}
	case KeyUp:
		return g.tryMove(ctx, 0, -1)
	case KeyDown:
		return g.tryMove(ctx, 0, 1)
	case KeyLeft:
		return g.tryMove(ctx, -1, 0)
	case KeyRight:
		return g.tryMove(ctx, 1, 0)
	}
	return false
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(ctx context.Context, dx, dy int) bool {
	moved := entity.MoveBy(g.level, g.roster, g.player, dx, dy)
	outcome := "blocked"
	if moved {
		outcome = "moved"
	}
	g.metrics.Moves.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	return moved
}

// State returns the current loop state.
func (g *Game) State() State { return g.state }

// Seed returns the seed actually used, which differs from Config.Seed when
// that was 0.
func (g *Game) Seed() int64 { return g.seed }

// Player returns the player entity.
func (g *Game) Player() *entity.Entity { return g.player }

// Roster returns every entity in the level.
func (g *Game) Roster() *entity.Roster { return g.roster }

// Map returns the current level.
func (g *Game) Map() *world.Map { return g.level }

// Rooms returns the rooms accepted during generation.
func (g *Game) Rooms() []world.Rect { return g.rooms }

// Turns returns the number of turns taken so far.
func (g *Game) Turns() int { return g.turns }
