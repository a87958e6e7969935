package entity

import (
	"github.com/samdwyer/guildsim/internal/combat"
	"github.com/samdwyer/guildsim/internal/gamedata"
)

// Enemy is a monster instantiated for one floor.
type Enemy struct {
	Combatant
	Type    gamedata.EnemyType
	Scaling float64 // Applied once at creation
}

// NewEnemy creates an enemy whose template stats are multiplied by scaling
// and truncated.
func NewEnemy(enemyType gamedata.EnemyType, scaling float64) *Enemy {
	base := enemyType.Stats()
	scaled := gamedata.BaseStats{
		HP:      scale(base.HP, scaling),
		Attack:  scale(base.Attack, scaling),
		Defense: scale(base.Defense, scaling),
		Magic:   scale(base.Magic, scaling),
		Speed:   scale(base.Speed, scaling),
	}
	return &Enemy{
		Combatant: newCombatant(enemyType.String(), scaled),
		Type:      enemyType,
		Scaling:   scaling,
	}
}

func scale(stat int, factor float64) int {
	return int(float64(stat) * factor)
}

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
