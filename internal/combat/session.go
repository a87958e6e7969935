package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/guildsim/internal/telemetry"
)

// MaxTurns caps a single fight. Reaching it with both sides standing ends
// the fight with OutcomeTimeout.
const MaxTurns = 100

// Outcome is the terminal state of a fight.
type Outcome int

const (
	// OutcomeOngoing - fight still in progress
	OutcomeOngoing Outcome = iota
	// OutcomeVictory - all enemies defeated
	OutcomeVictory
	// OutcomeDefeat - all party members defeated
	OutcomeDefeat
	// OutcomeTimeout - turn cap reached with both sides standing
	OutcomeTimeout
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name for JSON and YAML reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result summarizes a finished fight.
type Result struct {
	Outcome Outcome
	Turns   int
	Log     []LogEntry
}

// Victory reports whether the party won.
func (r Result) Victory() bool { return r.Outcome == OutcomeVictory }

// Session is a single fight between a party and an enemy roster. The
// combatants are mutated in place.
type Session struct {
	party    []Combatant
	enemies  []Combatant
	resolver *Resolver
	turn     int
	outcome  Outcome
	log      []LogEntry
}

// NewSession creates a fight. A session with no living enemies starts as a
// victory; one with no living party members starts as a defeat.
func NewSession(party, enemies []Combatant, rng Rand) *Session {
	s := &Session{
		party:    party,
		enemies:  enemies,
		resolver: NewResolver(rng),
	}
	s.checkEnd()
	return s
}

// Active reports whether the fight is still running.
func (s *Session) Active() bool { return s.outcome == OutcomeOngoing }

// Turn returns the number of turns resolved so far.
func (s *Session) Turn() int { return s.turn }

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Log returns the attack log so far.
func (s *Session) Log() []LogEntry { return s.log }

// Step resolves one turn. It is a no-op once the fight has ended.
func (s *Session) Step() TurnResult {
	if !s.Active() {
		return TurnResult{
			PartyAlive:   AliveCount(s.party),
			EnemiesAlive: AliveCount(s.enemies),
		}
	}

	s.turn++
	result := s.resolver.ResolveTurn(s.turn, s.party, s.enemies)
	s.log = append(s.log, result.Entries...)

	if !s.checkEnd() && s.turn >= MaxTurns {
		s.outcome = OutcomeTimeout
	}
	return result
}

// checkEnd sets the outcome if either side is wiped. Party defeat wins ties.
func (s *Session) checkEnd() bool {
	switch {
	case AliveCount(s.party) == 0:
		s.outcome = OutcomeDefeat
	case AliveCount(s.enemies) == 0:
		s.outcome = OutcomeVictory
	default:
		return false
	}
	return true
}

// Run steps the fight to completion.
func (s *Session) Run(ctx context.Context) Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("party_size", AliveCount(s.party)),
		attribute.Int("enemy_count", AliveCount(s.enemies)),
	)

	for s.Active() {
		s.Step()
	}

	span.SetAttributes(
		attribute.String("outcome", s.outcome.String()),
		attribute.Int("turns_taken", s.turn),
		attribute.Int("attacks", len(s.log)),
	)

	return Result{
		Outcome: s.outcome,
		Turns:   s.turn,
		Log:     s.log,
	}
}
