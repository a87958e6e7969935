package world

import (
	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/gamedata"
)

// Band is a roster used from MinFloor until the next band begins.
type Band struct {
	MinFloor int
	Roster   []gamedata.EnemyType
}

// DefaultBands returns the standard floor bands.
func DefaultBands() []Band {
	return []Band{
		{MinFloor: 1, Roster: []gamedata.EnemyType{gamedata.EnemyGoblin, gamedata.EnemyGoblin}},
		{MinFloor: 4, Roster: []gamedata.EnemyType{gamedata.EnemyGoblin, gamedata.EnemyOrc, gamedata.EnemySkeleton}},
		{MinFloor: 8, Roster: []gamedata.EnemyType{gamedata.EnemyOrc, gamedata.EnemyDarkMage, gamedata.EnemySkeleton}},
		{MinFloor: 16, Roster: []gamedata.EnemyType{gamedata.EnemyDragon, gamedata.EnemyDarkMage, gamedata.EnemyOrc}},
	}
}

// ParseBand builds a band from enemy names. Unknown names become
// gamedata.DefaultEnemy and are returned in unknown, in order.
func ParseBand(minFloor int, names []string) (band Band, unknown []string) {
	band = Band{MinFloor: minFloor, Roster: make([]gamedata.EnemyType, len(names))}
	for i, name := range names {
		enemyType, ok := gamedata.ParseEnemyType(name)
		if !ok {
			unknown = append(unknown, name)
		}
		band.Roster[i] = enemyType
	}
	return band, unknown
}

// ValidateBands checks that bands start at floor 1, increase strictly and
// all have enemies.
func ValidateBands(bands []Band) error {
	vb := errors.NewValidationBuilder()
	if len(bands) == 0 {
		return vb.RequiredField("bands").Build()
	}
	if bands[0].MinFloor != 1 {
		vb.Field("bands[0].min_floor", "must be 1")
	}
	for i, b := range bands {
		if len(b.Roster) == 0 {
			vb.Fieldf("bands", "band %d has no enemies", i)
		}
		if i > 0 && b.MinFloor <= bands[i-1].MinFloor {
			vb.Fieldf("bands", "band %d must start above floor %d", i, bands[i-1].MinFloor)
		}
	}
	return vb.Build()
}
