package telemetry

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all game metrics.
const meterName = "github.com/samdwyer/rogue"

// Metrics holds the OpenTelemetry instruments recorded by the game core.
type Metrics struct {
	// Turns counts completed loop iterations.
	Turns metric.Int64Counter

	// Moves counts movement requests. Use with attribute:
	//   attribute.String("outcome", "moved"|"blocked")
	Moves metric.Int64Counter

	// FOVRecomputes counts visibility recomputations.
	FOVRecomputes metric.Int64Counter

	// MonstersSpawned counts monsters created by population. Use with attribute:
	//   attribute.String("species", ...)
	MonstersSpawned metric.Int64Counter

	// SpawnsRejected counts monster placements skipped because the tile was blocked.
	SpawnsRejected metric.Int64Counter
}

// NewMetrics creates the instruments on the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Turns, err = m.Int64Counter("rogue.turns",
		metric.WithDescription("Completed game loop turns."),
	); err != nil {
		return nil, err
	}
	if met.Moves, err = m.Int64Counter("rogue.moves",
		metric.WithDescription("Movement requests by outcome."),
	); err != nil {
		return nil, err
	}
	if met.FOVRecomputes, err = m.Int64Counter("rogue.fov.recomputes",
		metric.WithDescription("Field of view recomputations."),
	); err != nil {
		return nil, err
	}
	if met.MonstersSpawned, err = m.Int64Counter("rogue.monsters.spawned",
		metric.WithDescription("Monsters placed during population by species."),
	); err != nil {
		return nil, err
	}
	if met.SpawnsRejected, err = m.Int64Counter("rogue.monsters.rejected",
		metric.WithDescription("Monster placements skipped on blocked tiles."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level instruments backed by the global
// meter provider. Instruments created before Setup delegate to the provider
// installed later.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("telemetry: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}
