// Package balance runs many party compositions through the dungeon and ranks
// them by how deep they got.
package balance

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/game"
	"github.com/samdwyer/guildsim/internal/telemetry"
)

// Config holds harness options.
type Config struct {
	Runner *game.Runner
	// Seed is the base seed; composition i uses Seed+i.
	Seed int64
	// Workers bounds concurrent runs. Zero means 1.
	Workers int
	Logger  *slog.Logger
}

// Validate checks the config.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Runner == nil {
		vb.RequiredField("runner")
	}
	if c.Workers < 0 {
		vb.Field("workers", "must not be negative")
	}
	return vb.Build()
}

// Harness ranks compositions.
type Harness struct {
	runner  *game.Runner
	seed    int64
	workers int
	logger  *slog.Logger
}

// NewHarness creates a harness.
func NewHarness(cfg *Config) (*Harness, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Harness{
		runner:  cfg.Runner,
		seed:    cfg.Seed,
		workers: cfg.Workers,
		logger:  cfg.Logger,
	}
	if h.workers == 0 {
		h.workers = 1
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h, nil
}

// Ranking is the ordered outcome of a harness run.
type Ranking struct {
	Seed     int64
	FloorCap int
	Results  []*game.Result
}

// Run runs every composition and returns results in input order. Each
// composition gets its own random source seeded from its index, so results do
// not depend on the worker count.
func (h *Harness) Run(ctx context.Context, comps []game.Composition) ([]*game.Result, error) {
	results := make([]*game.Result, len(comps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for i, comp := range comps {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(h.seed + int64(i)))
			res, err := h.runner.Run(gctx, comp, rng)
			if err != nil {
				return errors.Wrapf(err, "composition %d (%s)", i, comp)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Rank runs every composition and sorts the results by max floor reached.
func (h *Harness) Rank(ctx context.Context, comps []game.Composition) (*Ranking, error) {
	tracer := telemetry.Tracer("balance")
	ctx, span := tracer.Start(ctx, "balance.rank")
	defer span.End()
	span.SetAttributes(
		attribute.Int("compositions", len(comps)),
		attribute.Int("workers", h.workers),
		attribute.Int64("seed", h.seed),
	)

	results, err := h.Run(ctx, comps)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	SortByFloor(results)

	if len(results) > 0 {
		span.SetAttributes(
			attribute.String("best_composition", results[0].Composition.String()),
			attribute.Int("best_floor", results[0].MaxFloorReached),
		)
	}
	h.logger.InfoContext(ctx, "balance ranking complete",
		slog.Int("compositions", len(results)),
		slog.Int64("seed", h.seed),
	)

	return &Ranking{
		Seed:     h.seed,
		FloorCap: h.runner.FloorCap(),
		Results:  results,
	}, nil
}

// SortByFloor orders results by MaxFloorReached, deepest first. Ties keep
// their input order.
func SortByFloor(results []*game.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MaxFloorReached > results[j].MaxFloorReached
	})
}
