// Package spawn scatters monsters into freshly generated rooms.
package spawn

import (
	"context"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/world"
)

// DefaultMaxRoomMonsters is the upper bound on monsters per room.
const DefaultMaxRoomMonsters = 5

// Populator places monsters drawn from a species table into rooms. It implements
// world.Populator and is invoked once per accepted room.
type Populator struct {
	rng        *rand.Rand
	species    *gamedata.SpeciesTable
	roster     *entity.Roster
	maxPerRoom int
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// NewPopulator creates a populator that adds monsters to roster.
func NewPopulator(rng *rand.Rand, species *gamedata.SpeciesTable, roster *entity.Roster, maxPerRoom int) *Populator {
	return &Populator{
		rng:        rng,
		species:    species,
		roster:     roster,
		maxPerRoom: maxPerRoom,
		metrics:    telemetry.DefaultMetrics(),
		logger:     slog.Default(),
	}
}

// WithMetrics replaces the instruments used to count spawns.
func (p *Populator) WithMetrics(m *telemetry.Metrics) *Populator {
	if m != nil {
		p.metrics = m
	}
	return p
}

// WithLogger sets the logger used for placement diagnostics.
func (p *Populator) WithLogger(logger *slog.Logger) *Populator {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Populate draws a monster count in [0, maxPerRoom] and tries to place
// each one on a random interior tile. A draw that lands on a blocked tile
// is skipped, not retried.
func (p *Populator) Populate(ctx context.Context, room world.Rect, m *world.Map) {
	if p.maxPerRoom <= 0 {
		return
	}
	// Rooms narrower than 2 have no interior to sample from.
	if room.X2-room.X1 < 2 || room.Y2-room.Y1 < 2 {
		return
	}

	tracer := telemetry.Tracer("spawn")
	ctx, span := tracer.Start(ctx, "spawn.populate")
	defer span.End()

	count := p.rng.Intn(p.maxPerRoom + 1)
	spawned, rejected := 0, 0

	for i := 0; i < count; i++ {
		x := room.X1 + 1 + p.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + p.rng.Intn(room.Y2-room.Y1-1)

		if entity.IsBlocked(m, p.roster, x, y) {
			rejected++
			continue
		}

		def := p.species.Pick(p.rng)
		if def == nil {
			continue
		}

		p.roster.Add(entity.NewFromDef(def, x, y))
		spawned++
		p.metrics.MonstersSpawned.Add(ctx, 1, metric.WithAttributes(attribute.String("species", def.ID)))
		p.logger.Debug("monster spawned", "species", def.ID, "x", x, "y", y)
	}

	if rejected > 0 {
		p.metrics.SpawnsRejected.Add(ctx, int64(rejected))
	}

	span.SetAttributes(
		attribute.Int("spawn.requested", count),
		attribute.Int("spawn.placed", spawned),
		attribute.Int("spawn.rejected", rejected),
	)
}
