package sim

import "math"

// NaiveAI walks toward the opponent, hops at random and punches when close.
type NaiveAI struct {
	JumpChance  float64
	AttackRange float64
}

// NewNaiveAI creates the default computer opponent.
func NewNaiveAI(cfg AIConfig) *NaiveAI {
	return &NaiveAI{JumpChance: cfg.JumpChance, AttackRange: cfg.AttackRange}
}

// Decide chases every frame. The punch check uses the position after this
// frame's step, since movement is applied before attacks.
func (a *NaiveAI) Decide(m *Match, self, enemy *Fighter) Intent {
	var in Intent

	next := self.X
	if self.X > enemy.X {
		in.Left = true
		next -= self.Speed
	} else {
		in.Right = true
		next += self.Speed
	}

	if self.Grounded() && m.Rand().Float64() < a.JumpChance {
		in.Jump = true
	}

	if math.Abs(next-enemy.X) < a.AttackRange {
		in.Punch = true
	}
	return in
}

// PlainPunches marks the naive AI's punches as bare attacks: no combo, no
// punch energy and no swing sound.
func (a *NaiveAI) PlainPunches() bool { return true }
