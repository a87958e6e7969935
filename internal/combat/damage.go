package combat

import "math"

// Damage variance bounds, drawn uniformly per hit.
const (
	VarianceMin = 0.9
	VarianceMax = 1.1
)

// EffectiveAttack applies the formation attack modifier, truncating to int.
func EffectiveAttack(c Combatant) int {
	if p, ok := c.(Positioned); ok {
		return int(float64(c.GetAttack()) * AttackModifier(p.FormationPosition()))
	}
	return c.GetAttack()
}

// EffectiveDefense applies the formation defense modifier, truncating to int.
func EffectiveDefense(c Combatant) int {
	if p, ok := c.(Positioned); ok {
		return int(float64(c.GetDefense()) * DefenseModifier(p.FormationPosition()))
	}
	return c.GetDefense()
}

// RawDamage is effective attack minus half the defender's effective defense
// (rounded down). It may be zero or negative.
func RawDamage(attacker, defender Combatant) int {
	return EffectiveAttack(attacker) - EffectiveDefense(defender)/2
}

// ApplyVariance scales raw damage and rounds it, with a floor of 1.
func ApplyVariance(raw int, variance float64) int {
	damage := int(math.Round(float64(raw) * variance))
	if damage < 1 {
		return 1
	}
	return damage
}

// Variance draws a multiplier in [VarianceMin, VarianceMax).
func Variance(rng Rand) float64 {
	return VarianceMin + (VarianceMax-VarianceMin)*rng.Float64()
}

// CalculateDamage rolls the damage of one attack without applying it.
func CalculateDamage(attacker, defender Combatant, rng Rand) int {
	return ApplyVariance(RawDamage(attacker, defender), Variance(rng))
}
