package entity

import (
	"fmt"

	"github.com/samdwyer/guildsim/internal/combat"
	"github.com/samdwyer/guildsim/internal/gamedata"
)

// Adventurer is a party member with a job and a formation slot.
type Adventurer struct {
	Combatant
	Job      gamedata.JobClass
	Position int // Formation slot 0-3; 0-2 front row, 3 back row
}

// NewAdventurer creates an adventurer with the job's base stats.
func NewAdventurer(name string, job gamedata.JobClass, position int) *Adventurer {
	return &Adventurer{
		Combatant: newCombatant(name, job.Stats()),
		Job:       job,
		Position:  position,
	}
}

// AdventurerName returns the default name for a job in a slot, e.g. "Mage2".
func AdventurerName(job gamedata.JobClass, position int) string {
	return fmt.Sprintf("%s%d", job, position+1)
}

// FormationPosition returns the adventurer's formation slot.
func (a *Adventurer) FormationPosition() int { return a.Position }

// Ensure Adventurer implements the combat interfaces
var (
	_ combat.Combatant  = (*Adventurer)(nil)
	_ combat.Positioned = (*Adventurer)(nil)
)
