// Package combat resolves turn-based fights between a formation party and an
// enemy roster.
//
// Damage, target selection and turn order are pure functions of combatant
// stats plus an injected random source, so a seeded source reproduces a fight
// exactly.
package combat

// Combatant is the interface for any entity that can participate in combat.
// Both adventurers and enemies implement it.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetAttack() int
	GetDefense() int
	GetSpeed() int

	// TakeDamage applies an already-mitigated amount and returns HP lost.
	TakeDamage(amount int) int
}

// Positioned is implemented by combatants that occupy a formation slot.
// Combatants without a slot use their raw stats and uniform hit weight.
type Positioned interface {
	FormationPosition() int
}

// Rand is the random source used for damage variance and target rolls.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// AliveCount returns the number of living combatants.
func AliveCount(roster []Combatant) int {
	count := 0
	for _, c := range roster {
		if c.IsAlive() {
			count++
		}
	}
	return count
}

// FirstAlive returns the first living combatant in roster order, or nil.
func FirstAlive(roster []Combatant) Combatant {
	for _, c := range roster {
		if c.IsAlive() {
			return c
		}
	}
	return nil
}

func alive(roster []Combatant) []Combatant {
	out := make([]Combatant, 0, len(roster))
	for _, c := range roster {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}
