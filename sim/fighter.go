package sim

import (
	"image/color"
	"math"
	"time"
)

// MaxEnergy is the energy needed for a special move.
const MaxEnergy = 100.0

// Stats is a fighter stat preset.
type Stats struct {
	Name   string
	Health float64
	Speed  float64
	Power  float64
}

var presets = map[string]Stats{
	"brawler": {Name: "brawler", Health: 100, Speed: 5, Power: 1},
	"tank":    {Name: "tank", Health: 120, Speed: 4, Power: 1.2},
	// striker is not used by either mode unless selected in [Match]
	"striker": {Name: "striker", Health: 80, Speed: 6, Power: 1.4},
}

// LookupPreset returns the named stat preset.
func LookupPreset(name string) (Stats, bool) {
	s, ok := presets[name]
	return s, ok
}

// Player colors
var (
	ColorPlayer1 = color.NRGBA{R: 0, G: 255, B: 255, A: 255} // cyan
	ColorPlayer2 = color.NRGBA{R: 255, G: 0, B: 0, A: 255}   // red
	ColorBullet1 = color.NRGBA{R: 255, G: 255, B: 0, A: 255} // yellow
	ColorBullet2 = color.NRGBA{R: 255, G: 165, B: 0, A: 255} // orange
)

// Fighter is one combatant.
type Fighter struct {
	// Slot is 1 or 2
	Slot int

	X, Y   float64
	VY     float64
	Facing float64 // +1 faces right, -1 faces left

	Color       color.NRGBA
	BulletColor color.NRGBA

	MaxHealth float64
	Health    float64
	Speed     float64
	Power     float64
	Energy    float64

	// Action is the most recent accepted attack; Crouching is recomputed every frame.
	Action    Action
	Crouching bool

	Combo int

	// LastAttack is the match time of the last accepted attack.
	LastAttack  time.Duration
	hasAttacked bool

	// Flash counts down the frames left of hit feedback
	Flash int

	AI          bool
	JumpImpulse float64

	ground float64
}

// NewFighter places a fighter on the ground at x.
func NewFighter(slot int, x, facing float64, stats Stats, ai bool, cfg Config) *Fighter {
	impulse := cfg.Physics.JumpImpulse
	if ai {
		impulse = cfg.Physics.AIJumpImpulse
	}
	f := &Fighter{
		Slot:        slot,
		X:           x,
		Y:           cfg.Arena.Ground,
		Facing:      facing,
		MaxHealth:   stats.Health,
		Health:      stats.Health,
		Speed:       stats.Speed,
		Power:       stats.Power,
		AI:          ai,
		JumpImpulse: impulse,
		ground:      cfg.Arena.Ground,
	}
	if slot == 1 {
		f.Color, f.BulletColor = ColorPlayer1, ColorBullet1
	} else {
		f.Color, f.BulletColor = ColorPlayer2, ColorBullet2
	}
	return f
}

// Grounded reports whether the fighter stands on the ground.
func (f *Fighter) Grounded() bool {
	return f.VY == 0 && f.Y >= f.ground
}

// ApplyPhysics integrates one frame of vertical motion.
func (f *Fighter) ApplyPhysics(gravity float64) {
	f.Y += f.VY
	f.VY += gravity
	if f.Y >= f.ground {
		f.Y = f.ground
		f.VY = 0
	}
}

// Jump starts a jump; it does nothing while airborne.
func (f *Fighter) Jump() bool {
	if !f.Grounded() {
		return false
	}
	f.VY = -f.JumpImpulse
	return true
}

// AddEnergy changes energy by delta, keeping it within [0, MaxEnergy].
func (f *Fighter) AddEnergy(delta float64) {
	f.Energy = clamp(f.Energy+delta, 0, MaxEnergy)
}

// TakeDamage subtracts health and starts the hit flash.
// Health may drop below zero until the match clamps it.
func (f *Fighter) TakeDamage(amount float64, flash int) {
	f.Health -= amount
	f.Flash = flash
}

// Defeated reports whether health reached zero.
func (f *Fighter) Defeated() bool {
	return f.Health <= 0
}

// HealthRatio is the health bar fill in [0, 1].
func (f *Fighter) HealthRatio() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	return clamp(f.Health/f.MaxHealth, 0, 1)
}

// State is the display state at match time now.
func (f *Fighter) State(now time.Duration) ActionKind {
	if f.Action.Active(now) {
		return f.Action.Kind
	}
	if f.Crouching {
		return ActionCrouch
	}
	return ActionIdle
}

// ready reports whether the shared attack cooldown has elapsed.
func (f *Fighter) ready(now, cooldown time.Duration) bool {
	return !f.hasAttacked || now-f.LastAttack >= cooldown
}

func (f *Fighter) markAttack(now time.Duration, kind ActionKind, display time.Duration) {
	f.hasAttacked = true
	f.LastAttack = now
	f.Action = Action{Kind: kind, Start: now, Duration: display}
}

// Draw renders the stick figure.
func (f *Fighter) Draw(c Canvas, now time.Duration) {
	c.Save()
	defer c.Restore()

	if f.Flash > 0 {
		c.SetAlpha(0.5)
	}
	c.SetStroke(f.Color, 3)

	state := f.State(now)
	offset := 50.0
	if state == ActionCrouch {
		offset = 25
	}

	c.StrokeCircle(f.X, f.Y-offset-10, 10)
	c.StrokeLine(f.X, f.Y-offset, f.X, f.Y)

	armY := f.Y - offset + 10
	c.StrokeLine(f.X, armY, f.X+state.Reach()*f.Facing, armY)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
