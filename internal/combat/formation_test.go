package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontRow(t *testing.T) {
	tests := []struct {
		position int
		want     bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FrontRow(tt.position), "position %d", tt.position)
	}
}

func TestModifiers(t *testing.T) {
	assert.Equal(t, 1.10, AttackModifier(0))
	assert.Equal(t, 1.0, DefenseModifier(0))
	assert.Equal(t, 1.0, AttackModifier(3))
	assert.Equal(t, 1.10, DefenseModifier(3))
}

func TestHitWeights(t *testing.T) {
	t.Run("full formation", func(t *testing.T) {
		weights := HitWeights(roster(
			&slotted{position: 0}, &slotted{position: 1},
			&slotted{position: 2}, &slotted{position: 3},
		))
		assert.InDeltaSlice(t, []float64{0.2, 0.2, 0.2, 0.1}, weights, 1e-9)
	})

	t.Run("front share split among remaining front members", func(t *testing.T) {
		weights := HitWeights(roster(&slotted{position: 1}, &slotted{position: 3}))
		assert.InDeltaSlice(t, []float64{0.6, 0.1}, weights, 1e-9)
	})

	t.Run("back row only", func(t *testing.T) {
		weights := HitWeights(roster(&slotted{position: 3}))
		assert.InDeltaSlice(t, []float64{0.1}, weights, 1e-9)
	})

	t.Run("unslotted candidates are uniform", func(t *testing.T) {
		weights := HitWeights(roster(&stub{}, &stub{}))
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, weights, 1e-9)
	})
}
