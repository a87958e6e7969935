package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/guildsim/internal/gamedata"
)

func TestNewAdventurer(t *testing.T) {
	a := NewAdventurer("Mage2", gamedata.JobMage, 1)

	assert.Equal(t, "Mage2", a.GetName())
	assert.Equal(t, 60, a.GetHP())
	assert.Equal(t, 60, a.GetMaxHP())
	assert.Equal(t, 5, a.GetAttack())
	assert.Equal(t, 20, a.GetMagic())
	assert.Equal(t, 1, a.FormationPosition())
	assert.True(t, a.IsAlive())
}

func TestAdventurerName(t *testing.T) {
	assert.Equal(t, "Warrior1", AdventurerName(gamedata.JobWarrior, 0))
	assert.Equal(t, "Priest4", AdventurerName(gamedata.JobPriest, 3))
}

func TestNewEnemyScaling(t *testing.T) {
	tests := []struct {
		name    string
		enemy   gamedata.EnemyType
		scaling float64
		want    gamedata.BaseStats
	}{
		{"unscaled goblin", gamedata.EnemyGoblin, 1.0, gamedata.BaseStats{HP: 50, Attack: 10, Defense: 5, Magic: 0, Speed: 12}},
		{"floor 2 goblin", gamedata.EnemyGoblin, 1.1, gamedata.BaseStats{HP: 55, Attack: 11, Defense: 5, Magic: 0, Speed: 13}},
		{"floor 3 orc", gamedata.EnemyOrc, 1.21, gamedata.BaseStats{HP: 96, Attack: 18, Defense: 12, Magic: 0, Speed: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(tt.enemy, tt.scaling)
			got := gamedata.BaseStats{HP: e.HP, Attack: e.Attack, Defense: e.Defense, Magic: e.Magic, Speed: e.Speed}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, e.HP, e.MaxHP)
			assert.Equal(t, tt.enemy.String(), e.GetName())
		})
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		hp       int
		amount   int
		wantHP   int
		wantLost int
	}{
		{"normal hit", 50, 14, 36, 14},
		{"minimum one", 50, 0, 49, 1},
		{"negative treated as one", 50, -5, 49, 1},
		{"overkill clamps to zero", 10, 99, 0, 10},
		{"already dead", 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Combatant{HP: tt.hp, MaxHP: 50}
			lost := c.TakeDamage(tt.amount)
			assert.Equal(t, tt.wantHP, c.HP)
			assert.Equal(t, tt.wantLost, lost)
			assert.Equal(t, tt.wantHP > 0, c.IsAlive())
		})
	}
}

func TestHeal(t *testing.T) {
	c := &Combatant{HP: 40, MaxHP: 50}
	assert.Equal(t, 10, c.Heal(25))
	assert.Equal(t, 50, c.HP)
	assert.Zero(t, c.Heal(-3))

	dead := &Combatant{HP: 0, MaxHP: 50}
	assert.Zero(t, dead.Heal(50))
	assert.False(t, dead.IsAlive())
}

func TestParty(t *testing.T) {
	w := NewAdventurer("Warrior1", gamedata.JobWarrior, 0)
	m := NewAdventurer("Mage2", gamedata.JobMage, 1)
	p := NewParty(w, m)

	assert.Equal(t, 2, p.AliveMemberCount())
	assert.Equal(t, 160, p.TotalHP())
	assert.False(t, p.IsDefeated())

	w.TakeDamage(30)
	m.TakeDamage(100)
	assert.Equal(t, 1, p.AliveMemberCount())

	restored := p.Rest()
	assert.Equal(t, 30, restored)
	assert.Equal(t, 100, w.GetHP())
	assert.False(t, m.IsAlive(), "rest does not revive")

	combatants := p.Combatants()
	require.Len(t, combatants, 2)
	assert.Same(t, w, combatants[0])

	assert.True(t, NewParty().IsDefeated())
}

func TestEnemyCombatants(t *testing.T) {
	enemies := []*Enemy{NewEnemy(gamedata.EnemyOrc, 1), NewEnemy(gamedata.EnemyDragon, 1)}
	out := EnemyCombatants(enemies)
	require.Len(t, out, 2)
	assert.Equal(t, "Dragon", out[1].GetName())
}
