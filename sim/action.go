package sim

import "time"

// ActionKind labels what a fighter is doing.
type ActionKind int

const (
	ActionIdle ActionKind = iota
	ActionCrouch
	ActionPunch
	ActionKick
	ActionSpecial
)

func (k ActionKind) String() string {
	switch k {
	case ActionIdle:
		return "idle"
	case ActionCrouch:
		return "crouch"
	case ActionPunch:
		return "punch"
	case ActionKick:
		return "kick"
	case ActionSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Reach is the drawn arm length for the state.
func (k ActionKind) Reach() float64 {
	switch k {
	case ActionPunch:
		return 30
	case ActionKick:
		return 45
	case ActionSpecial:
		return 65
	default:
		return 12
	}
}

// Action is a short lived attack with a display window. It only affects
// drawing; the attack cooldown is tracked separately on the fighter.
type Action struct {
	Kind     ActionKind
	Start    time.Duration
	Duration time.Duration
}

// Active reports whether the action is still displayed at now.
func (a Action) Active(now time.Duration) bool {
	if a.Kind == ActionIdle || a.Duration <= 0 {
		return false
	}
	return now >= a.Start && now < a.Start+a.Duration
}
