package combat

// stub is a minimal combatant without a formation slot.
type stub struct {
	name    string
	hp      int
	attack  int
	defense int
	speed   int
}

func (s *stub) GetName() string { return s.name }
func (s *stub) IsAlive() bool   { return s.hp > 0 }
func (s *stub) GetAttack() int  { return s.attack }
func (s *stub) GetDefense() int { return s.defense }
func (s *stub) GetSpeed() int   { return s.speed }

func (s *stub) TakeDamage(amount int) int {
	if s.hp <= 0 {
		return 0
	}
	amount = max(1, min(amount, s.hp))
	s.hp -= amount
	return amount
}

// slotted is a stub occupying a formation slot.
type slotted struct {
	stub
	position int
}

func (s *slotted) FormationPosition() int { return s.position }

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	values []float64
	next   int
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func fixedRand(v float64) *scriptedRand {
	return &scriptedRand{values: []float64{v}}
}

func roster(cs ...Combatant) []Combatant { return cs }
