package combat

import "sort"

// Side identifies which roster an actor belongs to.
type Side int

const (
	SideParty Side = iota
	SideEnemy
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideParty:
		return "party"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Actor is a combatant scheduled to act in a turn.
type Actor struct {
	Combatant
	Side Side
}

// LogEntry records a single attack.
type LogEntry struct {
	Turn        int    `json:"turn" yaml:"turn"`
	Attacker    string `json:"attacker" yaml:"attacker"`
	Target      string `json:"target" yaml:"target"`
	Damage      int    `json:"damage" yaml:"damage"`
	TargetAlive bool   `json:"target_alive" yaml:"target_alive"`
}

// TurnResult is the outcome of one resolved turn.
type TurnResult struct {
	Entries      []LogEntry
	PartyAlive   int
	EnemiesAlive int
}

// Ended reports whether either side was wiped during the turn.
func (t TurnResult) Ended() bool {
	return t.PartyAlive == 0 || t.EnemiesAlive == 0
}

// Resolver runs turns. It holds no state besides its random source.
type Resolver struct {
	rng Rand
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// TurnOrder returns every living combatant sorted by speed, fastest first.
// Ties keep input order, so party members act before enemies of equal speed.
func TurnOrder(party, enemies []Combatant) []Actor {
	order := make([]Actor, 0, len(party)+len(enemies))
	for _, c := range party {
		if c.IsAlive() {
			order = append(order, Actor{Combatant: c, Side: SideParty})
		}
	}
	for _, c := range enemies {
		if c.IsAlive() {
			order = append(order, Actor{Combatant: c, Side: SideEnemy})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].GetSpeed() > order[j].GetSpeed()
	})
	return order
}

// SelectTarget picks a living party member using formation hit weights.
// Returns nil when nobody is alive.
func (r *Resolver) SelectTarget(candidates []Combatant) Combatant {
	living := alive(candidates)
	if len(living) == 0 {
		return nil
	}

	weights := HitWeights(living)
	total := 0.0
	for _, w := range weights {
		total += w
	}

	roll := r.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return living[i]
		}
	}
	// Float rounding can leave roll just above the last boundary.
	return living[0]
}

// ResolveTurn runs one turn: every combatant alive at the start acts once in
// turn order. Party members hit the first living enemy; enemies pick a party
// member by hit weight. The turn stops as soon as either side is wiped.
func (r *Resolver) ResolveTurn(turn int, party, enemies []Combatant) TurnResult {
	result := TurnResult{}

	for _, actor := range TurnOrder(party, enemies) {
		// Killed earlier this turn
		if !actor.IsAlive() {
			continue
		}

		var target Combatant
		if actor.Side == SideParty {
			target = FirstAlive(enemies)
		} else {
			target = r.SelectTarget(party)
		}
		if target == nil {
			break
		}

		// Pass the combatant itself so its formation slot is visible.
		damage := CalculateDamage(actor.Combatant, target, r.rng)
		target.TakeDamage(damage)
		result.Entries = append(result.Entries, LogEntry{
			Turn:        turn,
			Attacker:    actor.GetName(),
			Target:      target.GetName(),
			Damage:      damage,
			TargetAlive: target.IsAlive(),
		})

		if AliveCount(party) == 0 || AliveCount(enemies) == 0 {
			break
		}
	}

	result.PartyAlive = AliveCount(party)
	result.EnemiesAlive = AliveCount(enemies)
	return result
}
