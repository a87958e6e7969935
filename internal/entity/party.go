package entity

import "github.com/samdwyer/guildsim/internal/combat"

// MaxPartySize is the number of formation slots.
const MaxPartySize = 4

// Party is the ordered roster of adventurers. Slice order is formation order.
type Party struct {
	Members []*Adventurer
}

// NewParty creates a party from adventurers already placed in their slots.
func NewParty(members ...*Adventurer) *Party {
	return &Party{Members: members}
}

// AliveMemberCount returns the number of members with HP remaining.
func (p *Party) AliveMemberCount() int {
	count := 0
	for _, m := range p.Members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated returns true when no member is alive. An empty party is defeated.
func (p *Party) IsDefeated() bool {
	return p.AliveMemberCount() == 0
}

// TotalHP returns the sum of current HP across members.
func (p *Party) TotalHP() int {
	total := 0
	for _, m := range p.Members {
		total += m.GetHP()
	}
	return total
}

// Rest heals every living member to full and returns the HP restored.
// Fallen members stay down.
func (p *Party) Rest() int {
	restored := 0
	for _, m := range p.Members {
		restored += m.Heal(m.GetMaxHP())
	}
	return restored
}

// Combatants returns the members as combat participants in formation order.
func (p *Party) Combatants() []combat.Combatant {
	out := make([]combat.Combatant, len(p.Members))
	for i, m := range p.Members {
		out[i] = m
	}
	return out
}

// EnemyCombatants converts an enemy roster for a combat session.
func EnemyCombatants(enemies []*Enemy) []combat.Combatant {
	out := make([]combat.Combatant, len(enemies))
	for i, e := range enemies {
		out[i] = e
	}
	return out
}
