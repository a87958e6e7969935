package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatsTable(t *testing.T) {
	tests := []struct {
		job  JobClass
		want BaseStats
	}{
		{JobWarrior, BaseStats{HP: 100, Attack: 15, Defense: 12, Magic: 3, Speed: 8}},
		{JobMage, BaseStats{HP: 60, Attack: 5, Defense: 5, Magic: 20, Speed: 10}},
		{JobPriest, BaseStats{HP: 70, Attack: 7, Defense: 8, Magic: 15, Speed: 9}},
		{JobThief, BaseStats{HP: 75, Attack: 12, Defense: 7, Magic: 5, Speed: 18}},
		{JobArcher, BaseStats{HP: 80, Attack: 13, Defense: 8, Magic: 6, Speed: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.job.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.Stats())
		})
	}
	assert.Len(t, Jobs(), len(tests))
}

func TestEnemyStatsTable(t *testing.T) {
	tests := []struct {
		enemy EnemyType
		name  string
		want  BaseStats
	}{
		{EnemyGoblin, "Goblin", BaseStats{HP: 50, Attack: 10, Defense: 5, Magic: 0, Speed: 12}},
		{EnemyOrc, "Orc", BaseStats{HP: 80, Attack: 15, Defense: 10, Magic: 0, Speed: 6}},
		{EnemyDarkMage, "Dark Mage", BaseStats{HP: 40, Attack: 5, Defense: 3, Magic: 18, Speed: 10}},
		{EnemySkeleton, "Skeleton", BaseStats{HP: 60, Attack: 12, Defense: 8, Magic: 0, Speed: 8}},
		{EnemyDragon, "Dragon", BaseStats{HP: 200, Attack: 25, Defense: 20, Magic: 15, Speed: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.enemy.String())
			assert.Equal(t, tt.want, tt.enemy.Stats())
		})
	}
	assert.Len(t, EnemyTypes(), len(tests))
}

func TestParseJob(t *testing.T) {
	tests := []struct {
		input  string
		want   JobClass
		wantOK bool
	}{
		{"Warrior", JobWarrior, true},
		{"mage", JobMage, true},
		{"  PRIEST ", JobPriest, true},
		{"Thief", JobThief, true},
		{"archer", JobArcher, true},
		{"Paladin", JobWarrior, false},
		{"", JobWarrior, false},
	}

	for _, tt := range tests {
		got, ok := ParseJob(tt.input)
		assert.Equal(t, tt.want, got, "ParseJob(%q)", tt.input)
		assert.Equal(t, tt.wantOK, ok, "ParseJob(%q) ok", tt.input)
	}
}

func TestParseEnemyType(t *testing.T) {
	tests := []struct {
		input  string
		want   EnemyType
		wantOK bool
	}{
		{"Dark Mage", EnemyDarkMage, true},
		{"dark_mage", EnemyDarkMage, true},
		{"DarkMage", EnemyDarkMage, true},
		{"dragon", EnemyDragon, true},
		{"Lich", EnemyGoblin, false},
	}

	for _, tt := range tests {
		got, ok := ParseEnemyType(tt.input)
		assert.Equal(t, tt.want, got, "ParseEnemyType(%q)", tt.input)
		assert.Equal(t, tt.wantOK, ok, "ParseEnemyType(%q) ok", tt.input)
	}
}

func TestOutOfRangeFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, "Unknown", JobClass(42).String())
	assert.Equal(t, JobWarrior.Stats(), JobClass(42).Stats())
	assert.Equal(t, "Unknown", EnemyType(-1).String())
	assert.Equal(t, EnemyGoblin.Stats(), EnemyType(-1).Stats())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"00FF00", true},
		{"#0000ff", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}

	c, err := ParseHexColor("#FF0000")
	require.NoError(t, err)
	r, g, b := c.RGB()
	assert.Equal(t, [3]int32{255, 0, 0}, [3]int32{r, g, b})
}

func TestJobColors(t *testing.T) {
	for _, j := range Jobs() {
		assert.NotEqual(t, tcell.ColorWhite, j.TCellColor(), j.String())
	}
	assert.Equal(t, tcell.ColorWhite, JobClass(-1).TCellColor())
}

type embeddedScenario struct {
	Seed         int64      `yaml:"seed"`
	FloorCap     int        `yaml:"floor_cap"`
	Compositions [][]string `yaml:"compositions"`
}

func TestLoadEmbeddedScenario(t *testing.T) {
	s, err := Load[embeddedScenario](DefaultScenarioFile)
	require.NoError(t, err)

	assert.Equal(t, 30, s.FloorCap)
	require.Len(t, s.Compositions, 5)
	assert.Equal(t, []string{"Warrior", "Warrior", "Warrior", "Priest"}, s.Compositions[0])

	_, err = Load[embeddedScenario]("missing.yaml")
	assert.Error(t, err)
}
