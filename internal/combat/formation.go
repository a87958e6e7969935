package combat

// Formation slots 0-2 are the front row; slot 3 and above are the back row.
const BackRowStart = 3

const (
	frontAttackModifier = 1.10
	backDefenseModifier = 1.10

	// FrontRowHitShare is split evenly between front-row members.
	FrontRowHitShare = 0.6
	// BackRowHitWeight is the weight of each back-row member.
	BackRowHitWeight = 0.1
)

// FrontRow reports whether a formation slot is in the front row.
func FrontRow(position int) bool {
	return position < BackRowStart
}

// AttackModifier returns the attack multiplier for a slot.
func AttackModifier(position int) float64 {
	if FrontRow(position) {
		return frontAttackModifier
	}
	return 1.0
}

// DefenseModifier returns the defense multiplier for a slot.
func DefenseModifier(position int) float64 {
	if FrontRow(position) {
		return 1.0
	}
	return backDefenseModifier
}

// HitWeights returns the targeting weight of each candidate, in order.
// Front-row members share FrontRowHitShare; back-row members get
// BackRowHitWeight each. Weights are relative odds and are not rescaled to
// sum to 1. Candidates without a formation slot weigh 1/len(candidates).
func HitWeights(candidates []Combatant) []float64 {
	frontCount := 0
	for _, c := range candidates {
		if p, ok := c.(Positioned); ok && FrontRow(p.FormationPosition()) {
			frontCount++
		}
	}

	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		p, ok := c.(Positioned)
		switch {
		case !ok:
			weights[i] = 1.0 / float64(len(candidates))
		case FrontRow(p.FormationPosition()):
			weights[i] = FrontRowHitShare / float64(frontCount)
		default:
			weights[i] = BackRowHitWeight
		}
	}
	return weights
}
