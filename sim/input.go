package sim

// Bindings maps fighter actions to key names.
type Bindings struct {
	Left    string `ini:"Left"`
	Right   string `ini:"Right"`
	Jump    string `ini:"Jump"`
	Crouch  string `ini:"Crouch"`
	Punch   string `ini:"Punch"`
	Kick    string `ini:"Kick"`
	Special string `ini:"Special"`
	Shoot   string `ini:"Shoot"`
}

// DefaultBindings returns the fixed key layout for player slot 1 or 2.
func DefaultBindings(slot int) Bindings {
	if slot == 2 {
		return Bindings{
			Left:    "ArrowLeft",
			Right:   "ArrowRight",
			Jump:    "ArrowUp",
			Crouch:  "ArrowDown",
			Punch:   "0",
			Kick:    ".",
			Special: "/",
			Shoot:   ";",
		}
	}
	return Bindings{
		Left:    "a",
		Right:   "d",
		Jump:    "w",
		Crouch:  "s",
		Punch:   "f",
		Kick:    "g",
		Special: "h",
		Shoot:   "j",
	}
}

// Names lists every bound key name.
func (b Bindings) Names() []string {
	return []string{b.Left, b.Right, b.Jump, b.Crouch, b.Punch, b.Kick, b.Special, b.Shoot}
}

// Intent is what a controller asks its fighter to do this frame. Shooting is
// not an intent: it happens in the shoot pass through Trigger.
type Intent struct {
	Left    bool `json:"left"`
	Right   bool `json:"right"`
	Jump    bool `json:"jump"`
	Crouch  bool `json:"crouch"`
	Punch   bool `json:"punch"`
	Kick    bool `json:"kick"`
	Special bool `json:"special"`
}

// Controller decides a fighter's intent once per frame.
type Controller interface {
	Decide(m *Match, self, enemy *Fighter) Intent
}

// Trigger is implemented by controllers that own a shoot key.
type Trigger interface {
	// Fired reports a press and consumes it, so a held key fires once.
	Fired() bool
}

// HumanController reads held keys.
type HumanController struct {
	Keys     Keys
	Bindings Bindings
}

// NewHumanController creates a keyboard controller.
func NewHumanController(keys Keys, b Bindings) *HumanController {
	if keys == nil {
		keys = NoKeys{}
	}
	return &HumanController{Keys: keys, Bindings: b}
}

// Decide samples the movement and attack keys.
func (h *HumanController) Decide(_ *Match, _, _ *Fighter) Intent {
	return Intent{
		Left:    h.Keys.Pressed(h.Bindings.Left),
		Right:   h.Keys.Pressed(h.Bindings.Right),
		Jump:    h.Keys.Pressed(h.Bindings.Jump),
		Crouch:  h.Keys.Pressed(h.Bindings.Crouch),
		Punch:   h.Keys.Pressed(h.Bindings.Punch),
		Kick:    h.Keys.Pressed(h.Bindings.Kick),
		Special: h.Keys.Pressed(h.Bindings.Special),
	}
}

// Fired releases the shoot key after reading it.
func (h *HumanController) Fired() bool {
	if !h.Keys.Pressed(h.Bindings.Shoot) {
		return false
	}
	h.Keys.Release(h.Bindings.Shoot)
	return true
}
