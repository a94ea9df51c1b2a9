package sim

import (
	"fmt"
	"math/rand"
	"time"
)

// Mode selects who controls each fighter.
type Mode int

const (
	// ModeSingle pits player 1 against the computer.
	ModeSingle Mode = iota
	// ModeMulti is two players on one keyboard.
	ModeMulti
	// ModeCPU runs both fighters with AI controllers.
	ModeCPU
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	case ModeCPU:
		return "cpu"
	default:
		return "unknown"
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single":
		return ModeSingle, nil
	case "multi":
		return ModeMulti, nil
	case "cpu":
		return ModeCPU, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Result describes how a match ended.
type Result struct {
	Over bool

	// Winner is the winning slot, or 0 for a draw.
	Winner int
	Draw   bool
}

func (r Result) String() string {
	switch {
	case !r.Over:
		return "in progress"
	case r.Draw:
		return "Draw!"
	default:
		return fmt.Sprintf("Player %d Wins!", r.Winner)
	}
}

// Options supplies collaborators for a match. Nil fields get no-op defaults.
type Options struct {
	Audio      Audio
	Scoreboard Scoreboard
	Keys       Keys
	Rand       *rand.Rand

	// Player1 and Player2 replace the controller the mode would pick.
	Player1 Controller
	Player2 Controller
}

// Match is the complete state of one fight. Tick mutates it synchronously.
type Match struct {
	cfg  Config
	mode Mode

	fighters    [2]*Fighter
	controllers [2]Controller
	plain       [2]bool
	order       []int

	melee       *MeleeResolver
	projectiles *Projectiles

	audio Audio
	board Scoreboard
	rng   *rand.Rand

	frame   int
	elapsed time.Duration

	shake          int
	shakeX, shakeY float64
	slowMo         float64

	result Result
}

// NewMatch builds both fighters from the configured presets.
func NewMatch(cfg Config, mode Mode, opts Options) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s1, _ := LookupPreset(cfg.Match.Player1)
	s2, _ := LookupPreset(cfg.Match.Player2)

	if opts.Audio == nil {
		opts.Audio = Discard{}
	}
	if opts.Scoreboard == nil {
		opts.Scoreboard = Discard{}
	}
	if opts.Keys == nil {
		opts.Keys = NoKeys{}
	}
	if opts.Rand == nil {
		seed := cfg.Match.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	m := &Match{
		cfg:         cfg,
		mode:        mode,
		melee:       NewMeleeResolver(cfg.Melee, opts.Audio),
		projectiles: NewProjectiles(cfg.Projectile, cfg.Melee.HitFlash, opts.Audio),
		audio:       opts.Audio,
		board:       opts.Scoreboard,
		rng:         opts.Rand,
		slowMo:      cfg.Match.SlowMo,
	}

	p1AI := mode == ModeCPU
	p2AI := mode != ModeMulti
	m.fighters[0] = NewFighter(1, cfg.Arena.Spawn1, 1, s1, p1AI, cfg)
	m.fighters[1] = NewFighter(2, cfg.Arena.Spawn2, -1, s2, p2AI, cfg)

	switch mode {
	case ModeSingle:
		m.controllers[0] = NewHumanController(opts.Keys, cfg.Player1Keys)
		m.controllers[1] = NewNaiveAI(cfg.AI)
		m.order = []int{0, 1}
	case ModeMulti:
		m.controllers[0] = NewHumanController(opts.Keys, cfg.Player1Keys)
		m.controllers[1] = NewHumanController(opts.Keys, cfg.Player2Keys)
		m.order = []int{1, 0}
	case ModeCPU:
		m.controllers[0] = NewNaiveAI(cfg.AI)
		m.controllers[1] = NewNaiveAI(cfg.AI)
		m.order = []int{0, 1}
	default:
		return nil, fmt.Errorf("unknown mode %d", mode)
	}
	if opts.Player1 != nil {
		m.controllers[0] = opts.Player1
	}
	if opts.Player2 != nil {
		m.controllers[1] = opts.Player2
	}
	for i, c := range m.controllers {
		_, m.plain[i] = c.(plainPuncher)
	}

	m.report()
	return m, nil
}

// Tick runs one frame. It returns false once the match is over.
func (m *Match) Tick() bool {
	if m.result.Over {
		return false
	}
	m.frame++
	m.elapsed += m.step()

	for _, f := range m.fighters {
		if f.Flash > 0 {
			f.Flash--
		}
	}
	m.updateShake()
	m.shoot()

	for _, i := range m.order {
		self, enemy := m.fighters[i], m.fighters[1-i]
		m.apply(self, enemy, m.controllers[i].Decide(m, self, enemy))
	}

	for _, f := range m.fighters {
		f.AddEnergy(m.cfg.Melee.EnergyRegen)
		f.ApplyPhysics(m.cfg.Physics.Gravity)
		if m.cfg.Match.ClampToArena {
			f.X = clamp(f.X, 0, m.cfg.Arena.Width)
		}
	}

	m.projectiles.Step(m.cfg.Arena.Width, m.fighters[:])
	m.checkResult()
	m.report()
	return !m.result.Over
}

func (m *Match) step() time.Duration {
	return time.Duration(float64(m.cfg.Match.FrameDuration) * m.slowMo)
}

func (m *Match) updateShake() {
	if m.shake <= 0 {
		m.shakeX, m.shakeY = 0, 0
		return
	}
	amp := m.cfg.Melee.ShakeAmplitude
	m.shakeX = m.rng.Float64()*2*amp - amp
	m.shakeY = m.rng.Float64()*2*amp - amp
	m.shake--
}

// plainPuncher is implemented by controllers whose punches skip the combo,
// energy and swing sound bookkeeping.
type plainPuncher interface {
	PlainPunches() bool
}

// shoot fires for slot 1 then slot 2, before anyone moves.
func (m *Match) shoot() {
	for i, c := range m.controllers {
		if t, ok := c.(Trigger); ok && t.Fired() {
			m.Fire(m.fighters[i])
		}
	}
}

// apply carries out an intent in the order the keys are checked: move, jump,
// crouch, punch, kick, special.
func (m *Match) apply(f, enemy *Fighter, in Intent) {
	if in.Left {
		f.X -= f.Speed
	}
	if in.Right {
		f.X += f.Speed
	}
	if in.Jump {
		f.Jump()
	}
	f.Crouching = in.Crouch

	if in.Punch {
		if m.Attack(f, enemy, ActionPunch).Accepted && !m.plain[f.Slot-1] {
			m.audio.Play(CuePunch, false)
			f.Combo++
			f.AddEnergy(m.cfg.Melee.PunchEnergy)
		}
	}
	if in.Kick && f.Combo >= m.cfg.Melee.KickCombo {
		if m.Attack(f, enemy, ActionKick).Accepted {
			f.Combo = 0
			f.AddEnergy(m.cfg.Melee.KickEnergy)
		}
	}
	if in.Special && f.Energy >= MaxEnergy {
		if m.Attack(f, enemy, ActionSpecial).Accepted {
			m.audio.Play(CueSpecial, false)
			f.Energy = 0
		}
	}
}

// Attack resolves a melee attempt and starts camera shake on a hit.
func (m *Match) Attack(att, def *Fighter, kind ActionKind) Strike {
	s := m.melee.Resolve(m.elapsed, att, def, kind)
	if s.Hit {
		m.shake = s.Shake
	}
	return s
}

// Fire spawns a bullet from f.
func (m *Match) Fire(f *Fighter) *Bullet {
	return m.projectiles.Spawn(f)
}

func (m *Match) checkResult() {
	p1, p2 := m.fighters[0], m.fighters[1]
	down1, down2 := p1.Defeated(), p2.Defeated()
	if !down1 && !down2 {
		return
	}

	switch {
	case down1 && down2:
		m.result = Result{Over: true, Draw: true}
	case down1:
		m.result = Result{Over: true, Winner: 2}
	default:
		m.result = Result{Over: true, Winner: 1}
	}
	for _, f := range m.fighters {
		if f.Health < 0 {
			f.Health = 0
		}
	}
	m.board.ShowResult(m.result)
}

func (m *Match) report() {
	for _, f := range m.fighters {
		m.board.SetBars(f.Slot, f.HealthRatio(), f.Energy/MaxEnergy)
	}
}

// Draw renders fighters and bullets with the current shake offset.
func (m *Match) Draw(c Canvas) {
	c.Clear()
	c.Save()
	defer c.Restore()

	c.Translate(m.shakeX, m.shakeY)
	for _, f := range m.fighters {
		f.Draw(c, m.elapsed)
	}
	m.projectiles.Draw(c)
}

// Fighter returns the fighter in slot 1 or 2.
func (m *Match) Fighter(slot int) *Fighter {
	return m.fighters[slot-1]
}

// Bullets returns live bullets in spawn order.
func (m *Match) Bullets() []*Bullet { return m.projectiles.Bullets() }

// Result is the match outcome so far.
func (m *Match) Result() Result { return m.result }

// Over reports whether a winner (or draw) has been declared.
func (m *Match) Over() bool { return m.result.Over }

// Mode is the control mode the match was created with.
func (m *Match) Mode() Mode { return m.mode }

// Frame is the number of ticks run.
func (m *Match) Frame() int { return m.frame }

// Elapsed is simulated match time.
func (m *Match) Elapsed() time.Duration { return m.elapsed }

// Shake is the remaining camera shake countdown.
func (m *Match) Shake() int { return m.shake }

// SlowMo is the frame time multiplier.
func (m *Match) SlowMo() float64 { return m.slowMo }

// Rand is the match's random source.
func (m *Match) Rand() *rand.Rand { return m.rng }

// Config is the configuration the match was built with.
func (m *Match) Config() Config { return m.cfg }
