package game

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/guildsim/internal/combat"
	"github.com/samdwyer/guildsim/internal/entity"
	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/events"
	"github.com/samdwyer/guildsim/internal/telemetry"
	"github.com/samdwyer/guildsim/internal/world"
)

// FloorResult records the fight on one floor.
type FloorResult struct {
	Floor   int               `json:"floor" yaml:"floor"`
	Scaling float64           `json:"scaling" yaml:"scaling"`
	Outcome combat.Outcome    `json:"outcome" yaml:"outcome"`
	Turns   int               `json:"turns" yaml:"turns"`
	PartyHP int               `json:"party_hp" yaml:"party_hp"`
	Log     []combat.LogEntry `json:"log,omitempty" yaml:"log,omitempty"`
}

// Result summarizes a dungeon run.
type Result struct {
	Composition     Composition   `json:"composition" yaml:"composition"`
	MaxFloorReached int           `json:"max_floor_reached" yaml:"max_floor_reached"`
	TotalVictories  int           `json:"total_victories" yaml:"total_victories"`
	FinalScaling    float64       `json:"final_scaling" yaml:"final_scaling"`
	Status          Status        `json:"status" yaml:"status"`
	Fallbacks       int           `json:"fallbacks" yaml:"fallbacks"`
	Floors          []FloorResult `json:"floors,omitempty" yaml:"floors,omitempty"`
}

// Runner takes parties through the dungeon. It is safe for concurrent use as
// long as each Run gets its own random source.
type Runner struct {
	cfg Config
}

// NewRunner creates a runner.
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg.withDefaults()}, nil
}

// FloorCap returns the last floor a run attempts.
func (r *Runner) FloorCap() int { return r.cfg.FloorCap }

// Run builds a fresh party for the composition and fights floor by floor
// until the party loses, a fight times out or the floor cap is cleared.
// An empty composition is an immediate defeat. Compositions larger than the
// formation are rejected.
func (r *Runner) Run(ctx context.Context, comp Composition, rng combat.Rand) (*Result, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "dungeon.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("composition", comp.String()),
		attribute.Int("floor_cap", r.cfg.FloorCap),
		attribute.Bool("rest_between_floors", r.cfg.RestBetweenFloors),
	)

	party, unknown, err := BuildParty(comp)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := &Result{
		Composition: comp,
		Status:      StatusRunning,
		Fallbacks:   len(unknown),
	}
	for _, name := range unknown {
		r.emit(ctx, events.Event{
			Kind:        events.KindJobFallback,
			Composition: comp.String(),
			Detail:      name,
		})
	}

	for floor := 1; result.Status == StatusRunning; floor++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "dungeon run canceled")
		}

		switch {
		case party.IsDefeated():
			result.Status = StatusDefeated
		case floor > r.cfg.FloorCap:
			result.Status = StatusCompleted
		default:
			fr := r.runFloor(ctx, comp, party, floor, rng)
			result.Floors = append(result.Floors, fr)
			switch fr.Outcome {
			case combat.OutcomeVictory:
				result.MaxFloorReached = floor
				result.TotalVictories++
			case combat.OutcomeTimeout:
				result.Status = StatusTimedOut
			default:
				result.Status = StatusDefeated
			}
		}
	}

	result.FinalScaling = world.Scaling(result.MaxFloorReached)

	kind := events.KindDungeonFailed
	if result.Status == StatusCompleted {
		kind = events.KindDungeonCompleted
	}
	r.emit(ctx, events.Event{
		Kind:        kind,
		Composition: comp.String(),
		Floor:       result.MaxFloorReached,
		Scaling:     result.FinalScaling,
		Detail:      result.Status.String(),
	})

	span.SetAttributes(
		attribute.String("status", result.Status.String()),
		attribute.Int("max_floor_reached", result.MaxFloorReached),
		attribute.Float64("final_scaling", result.FinalScaling),
		attribute.Int("fallbacks", result.Fallbacks),
	)
	r.cfg.Logger.DebugContext(ctx, "dungeon run finished",
		slog.String("composition", comp.String()),
		slog.String("status", result.Status.String()),
		slog.Int("max_floor_reached", result.MaxFloorReached),
	)

	return result, nil
}

func (r *Runner) runFloor(ctx context.Context, comp Composition, party *entity.Party, floor int, rng combat.Rand) FloorResult {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "dungeon.floor")
	defer span.End()

	plan := r.cfg.Generator.Floor(floor)
	span.SetAttributes(
		attribute.Int("floor", floor),
		attribute.Float64("scaling", plan.Scaling),
		attribute.StringSlice("roster", plan.RosterNames()),
	)
	r.emit(ctx, events.Event{
		Kind:        events.KindFloorStarted,
		Composition: comp.String(),
		Floor:       floor,
		Scaling:     plan.Scaling,
	})

	enemies := r.cfg.Generator.EnemiesFor(floor)
	session := combat.NewSession(party.Combatants(), entity.EnemyCombatants(enemies), rng)
	res := session.Run(ctx)

	fr := FloorResult{
		Floor:   floor,
		Scaling: plan.Scaling,
		Outcome: res.Outcome,
		Turns:   res.Turns,
		PartyHP: party.TotalHP(),
	}
	if r.cfg.KeepLogs {
		fr.Log = res.Log
	}
	span.SetAttributes(
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("party_hp", fr.PartyHP),
	)

	if res.Victory() {
		r.emit(ctx, events.Event{
			Kind:        events.KindFloorCleared,
			Composition: comp.String(),
			Floor:       floor,
			Scaling:     plan.Scaling,
		})
		if r.cfg.RestBetweenFloors {
			party.Rest()
		}
	}
	return fr
}

func (r *Runner) emit(ctx context.Context, event events.Event) {
	r.cfg.Sink.Emit(ctx, event)
}
