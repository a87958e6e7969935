// Package world generates the enemy roster for each dungeon floor.
package world

import (
	"math"

	"github.com/samdwyer/guildsim/internal/entity"
	"github.com/samdwyer/guildsim/internal/gamedata"
)

// ScalingBase is the per-floor stat growth of enemies.
const ScalingBase = 1.1

// Scaling returns the enemy stat multiplier for a floor. Floor 1 is 1.0 and
// each floor adds 10% compounded. Floors below 1 are treated as floor 1.
func Scaling(floor int) float64 {
	if floor < 1 {
		floor = 1
	}
	return math.Pow(ScalingBase, float64(floor-1))
}

// Floor describes the encounter on one floor.
type Floor struct {
	Number  int                  `json:"floor" yaml:"floor"`
	Scaling float64              `json:"scaling" yaml:"scaling"`
	Roster  []gamedata.EnemyType `json:"-" yaml:"-"`
}

// RosterNames returns the enemy names in roster order.
func (f Floor) RosterNames() []string {
	names := make([]string, len(f.Roster))
	for i, e := range f.Roster {
		names[i] = e.String()
	}
	return names
}

// Generator produces fresh enemies for a floor from its band table.
type Generator struct {
	bands []Band
}

// NewGenerator creates a generator over validated bands.
func NewGenerator(bands []Band) (*Generator, error) {
	if err := ValidateBands(bands); err != nil {
		return nil, err
	}
	copied := make([]Band, len(bands))
	copy(copied, bands)
	return &Generator{bands: copied}, nil
}

// DefaultGenerator returns a generator over DefaultBands.
func DefaultGenerator() *Generator {
	return &Generator{bands: DefaultBands()}
}

// Bands returns a copy of the band table.
func (g *Generator) Bands() []Band {
	out := make([]Band, len(g.bands))
	copy(out, g.bands)
	return out
}

// Floor returns the scaling and roster for a floor.
func (g *Generator) Floor(floor int) Floor {
	return Floor{
		Number:  floor,
		Scaling: Scaling(floor),
		Roster:  g.bandFor(floor).Roster,
	}
}

// EnemiesFor instantiates the roster for a floor, each enemy scaled once.
func (g *Generator) EnemiesFor(floor int) []*entity.Enemy {
	plan := g.Floor(floor)
	enemies := make([]*entity.Enemy, len(plan.Roster))
	for i, enemyType := range plan.Roster {
		enemies[i] = entity.NewEnemy(enemyType, plan.Scaling)
	}
	return enemies
}

// bandFor returns the last band starting at or below floor.
func (g *Generator) bandFor(floor int) Band {
	band := g.bands[0]
	for _, b := range g.bands[1:] {
		if b.MinFloor > floor {
			break
		}
		band = b
	}
	return band
}
