package sim

import "image/color"

// Cue names a sound effect.
type Cue int

const (
	CuePunch Cue = iota
	CueHit
	CueSpecial
	CueGun
)

func (c Cue) String() string {
	switch c {
	case CuePunch:
		return "punch"
	case CueHit:
		return "hit"
	case CueSpecial:
		return "special"
	case CueGun:
		return "gun"
	default:
		return "unknown"
	}
}

// Audio plays sound cues. Calls are fire-and-forget.
type Audio interface {
	// Play starts cue. With rewind set, an instance already playing restarts
	// from the beginning; otherwise it keeps playing and the call is ignored.
	Play(cue Cue, rewind bool)
}

// Canvas is the drawing surface the simulation renders onto.
type Canvas interface {
	Clear()

	// Save pushes the transform, alpha and stroke/fill state; Restore pops it.
	Save()
	Restore()
	Translate(dx, dy float64)

	SetStroke(clr color.Color, width float64)
	SetFill(clr color.Color)
	SetAlpha(alpha float64)

	StrokeCircle(cx, cy, r float64)
	FillCircle(cx, cy, r float64)
	StrokeLine(x1, y1, x2, y2 float64)
}

// Keys exposes held key state by key name ("a", "ArrowLeft", ";", ...).
type Keys interface {
	Pressed(name string) bool

	// Release clears the held state until the key is pressed again.
	Release(name string)
}

// Scoreboard receives HUD updates.
type Scoreboard interface {
	// SetBars reports fills in [0, 1] for the given player slot.
	SetBars(slot int, health, energy float64)
	ShowResult(r Result)
}

// Discard is a no-op Audio and Scoreboard.
type Discard struct{}

func (Discard) Play(Cue, bool)                {}
func (Discard) SetBars(int, float64, float64) {}
func (Discard) ShowResult(Result)             {}

// NoKeys reports every key as released.
type NoKeys struct{}

func (NoKeys) Pressed(string) bool { return false }
func (NoKeys) Release(string)      {}
