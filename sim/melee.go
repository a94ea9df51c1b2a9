package sim

import (
	"math"
	"time"
)

// Move is the fixed damage and horizontal range of a melee attack.
type Move struct {
	Damage float64
	Range  float64
}

var moves = map[ActionKind]Move{
	ActionPunch:   {Damage: 5, Range: 30},
	ActionKick:    {Damage: 8, Range: 45},
	ActionSpecial: {Damage: 18, Range: 70},
}

// MoveFor returns the move for an attack kind.
func MoveFor(kind ActionKind) (Move, bool) {
	m, ok := moves[kind]
	return m, ok
}

// Strike is the outcome of an attack attempt.
type Strike struct {
	Accepted bool
	Hit      bool
	Damage   float64

	// Shake is the camera shake countdown to start, zero on a miss.
	Shake int
}

// MeleeResolver gates and applies melee attacks.
type MeleeResolver struct {
	cfg   MeleeConfig
	audio Audio
}

// NewMeleeResolver creates a resolver that plays the hit cue on audio.
func NewMeleeResolver(cfg MeleeConfig, audio Audio) *MeleeResolver {
	if audio == nil {
		audio = Discard{}
	}
	return &MeleeResolver{cfg: cfg, audio: audio}
}

// InReach is the melee hit test.
func InReach(att, def *Fighter, horizontal, vertical float64) bool {
	return math.Abs(att.X-def.X) < horizontal && math.Abs(att.Y-def.Y) < vertical
}

// Resolve attempts an attack at match time now. Attempts within the
// cooldown of the attacker's previous accepted attack change nothing.
func (r *MeleeResolver) Resolve(now time.Duration, att, def *Fighter, kind ActionKind) Strike {
	move, ok := MoveFor(kind)
	if !ok || !att.ready(now, r.cfg.Cooldown) {
		return Strike{}
	}

	att.markAttack(now, kind, r.display(kind))

	if !InReach(att, def, move.Range, r.cfg.VerticalReach) {
		return Strike{Accepted: true}
	}

	dmg := move.Damage * att.Power
	def.TakeDamage(dmg, r.cfg.HitFlash)
	def.X += att.Facing * r.cfg.Knockback
	r.audio.Play(CueHit, false)

	shake := r.cfg.ShakeLight
	if kind == ActionSpecial {
		shake = r.cfg.ShakeHeavy
	}
	return Strike{Accepted: true, Hit: true, Damage: dmg, Shake: shake}
}

func (r *MeleeResolver) display(kind ActionKind) time.Duration {
	switch kind {
	case ActionKick:
		return r.cfg.KickDisplay
	case ActionSpecial:
		return r.cfg.SpecialDisplay
	default:
		return r.cfg.PunchDisplay
	}
}
