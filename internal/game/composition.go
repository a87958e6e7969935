package game

import (
	"strings"

	"github.com/samdwyer/guildsim/internal/entity"
	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/gamedata"
)

// Composition is an ordered list of job names. Index is formation slot.
type Composition []string

// String returns the composition as a readable label, e.g. "Warrior, Mage".
func (c Composition) String() string {
	if len(c) == 0 {
		return "(empty)"
	}
	return strings.Join(c, ", ")
}

// Validate rejects compositions larger than the formation.
func (c Composition) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c) > entity.MaxPartySize {
		vb.Fieldf("composition", "has %d members, at most %d allowed", len(c), entity.MaxPartySize)
	}
	return vb.Build()
}

// BuildParty creates a fresh party for the composition. Unknown job names
// become gamedata.DefaultJob and are returned in unknown, in slot order.
func BuildParty(c Composition) (party *entity.Party, unknown []string, err error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	members := make([]*entity.Adventurer, len(c))
	for i, name := range c {
		job, ok := gamedata.ParseJob(name)
		if !ok {
			unknown = append(unknown, name)
		}
		members[i] = entity.NewAdventurer(entity.AdventurerName(job, i), job, i)
	}
	return entity.NewParty(members...), unknown, nil
}
