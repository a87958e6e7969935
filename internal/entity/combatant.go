// Package entity provides the adventurer and enemy records that take part in
// combat.
package entity

import "github.com/samdwyer/guildsim/internal/gamedata"

// Combatant is the stat record shared by adventurers and enemies. Alive is
// derived from HP, so it can never disagree with the HP value.
type Combatant struct {
	Name    string
	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Magic   int
	Speed   int
}

func newCombatant(name string, stats gamedata.BaseStats) Combatant {
	return Combatant{
		Name:    name,
		HP:      stats.HP,
		MaxHP:   stats.HP,
		Attack:  stats.Attack,
		Defense: stats.Defense,
		Magic:   stats.Magic,
		Speed:   stats.Speed,
	}
}

// GetName returns the combatant's name.
func (c *Combatant) GetName() string { return c.Name }

// IsAlive returns true if the combatant has HP remaining.
func (c *Combatant) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Combatant) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Combatant) GetMaxHP() int { return c.MaxHP }

// GetAttack returns the raw attack stat.
func (c *Combatant) GetAttack() int { return c.Attack }

// GetDefense returns the raw defense stat.
func (c *Combatant) GetDefense() int { return c.Defense }

// GetMagic returns the magic stat.
func (c *Combatant) GetMagic() int { return c.Magic }

// GetSpeed returns the speed stat used for turn order.
func (c *Combatant) GetSpeed() int { return c.Speed }

// TakeDamage applies an already-mitigated amount. At least 1 HP is removed
// from a living combatant and HP never drops below 0. Returns the HP lost.
func (c *Combatant) TakeDamage(amount int) int {
	if !c.IsAlive() {
		return 0
	}
	if amount < 1 {
		amount = 1
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	return amount
}

// Heal restores HP up to MaxHP and returns the amount restored. Dead
// combatants cannot be healed.
func (c *Combatant) Heal(amount int) int {
	if !c.IsAlive() || amount <= 0 {
		return 0
	}
	healed := min(c.MaxHP, c.HP+amount) - c.HP
	c.HP += healed
	return healed
}
