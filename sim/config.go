package sim

import (
	_ "embed" // default.ini
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

//go:embed default.ini
var defaultINI []byte

// ArenaConfig describes the playfield in pixels.
type ArenaConfig struct {
	Width  float64 `ini:"Width"`
	Height float64 `ini:"Height"`

	// Ground is the y coordinate fighters stand on. Larger y is lower on screen.
	Ground float64 `ini:"Ground"`

	// Spawn1 and Spawn2 are the starting x positions of the two fighters
	Spawn1 float64 `ini:"Spawn1"`
	Spawn2 float64 `ini:"Spawn2"`
}

// PhysicsConfig holds the vertical integrator constants (units per frame).
type PhysicsConfig struct {
	Gravity       float64 `ini:"Gravity"`
	JumpImpulse   float64 `ini:"JumpImpulse"`
	AIJumpImpulse float64 `ini:"AIJumpImpulse"`
}

// MeleeConfig holds attack gating and hit feedback tuning.
type MeleeConfig struct {
	Cooldown       time.Duration `ini:"Cooldown"`
	VerticalReach  float64       `ini:"VerticalReach"`
	Knockback      float64       `ini:"Knockback"`
	HitFlash       int           `ini:"HitFlash"`
	ShakeLight     int           `ini:"ShakeLight"`
	ShakeHeavy     int           `ini:"ShakeHeavy"`
	ShakeAmplitude float64       `ini:"ShakeAmplitude"`
	KickCombo      int           `ini:"KickCombo"`
	PunchEnergy    float64       `ini:"PunchEnergy"`
	KickEnergy     float64       `ini:"KickEnergy"`
	EnergyRegen    float64       `ini:"EnergyRegen"`
	PunchDisplay   time.Duration `ini:"PunchDisplay"`
	KickDisplay    time.Duration `ini:"KickDisplay"`
	SpecialDisplay time.Duration `ini:"SpecialDisplay"`
}

// ProjectileConfig holds bullet tuning.
type ProjectileConfig struct {
	Speed        float64 `ini:"Speed"`
	Damage       float64 `ini:"Damage"`
	TrailLength  int     `ini:"TrailLength"`
	MuzzleHeight float64 `ini:"MuzzleHeight"`
	HitWidth     float64 `ini:"HitWidth"`
	HitHeight    float64 `ini:"HitHeight"`
}

// AIConfig tunes the computer opponent.
type AIConfig struct {
	JumpChance  float64 `ini:"JumpChance"`
	AttackRange float64 `ini:"AttackRange"`

	// Script is an optional path to a JavaScript file defining decide(ctx).
	Script string `ini:"Script"`
}

// MatchConfig holds frame pacing and roster selection.
type MatchConfig struct {
	FrameDuration time.Duration `ini:"FrameDuration"`
	SlowMo        float64       `ini:"SlowMo"`

	// Seed drives AI and camera shake randomness. Zero picks a time based seed.
	Seed int64 `ini:"Seed"`

	Player1 string `ini:"Player1"`
	Player2 string `ini:"Player2"`

	ClampToArena bool `ini:"ClampToArena"`
}

// AudioConfig controls the sound cue backend.
type AudioConfig struct {
	Enabled bool    `ini:"Enabled"`
	Volume  float64 `ini:"Volume"`
}

// Config is the complete game configuration.
type Config struct {
	Arena       ArenaConfig      `ini:"Arena"`
	Physics     PhysicsConfig    `ini:"Physics"`
	Melee       MeleeConfig      `ini:"Melee"`
	Projectile  ProjectileConfig `ini:"Projectile"`
	AI          AIConfig         `ini:"AI"`
	Match       MatchConfig      `ini:"Match"`
	Audio       AudioConfig      `ini:"Audio"`
	Player1Keys Bindings         `ini:"Player1Keys"`
	Player2Keys Bindings         `ini:"Player2Keys"`
}

// DefaultConfig returns the built-in configuration. It matches default.ini.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  900,
			Height: 450,
			Ground: 360,
			Spawn1: 200,
			Spawn2: 700,
		},
		Physics: PhysicsConfig{
			Gravity:       0.8,
			JumpImpulse:   15,
			AIJumpImpulse: 14,
		},
		Melee: MeleeConfig{
			Cooldown:       180 * time.Millisecond,
			VerticalReach:  40,
			Knockback:      18,
			HitFlash:       6,
			ShakeLight:     6,
			ShakeHeavy:     15,
			ShakeAmplitude: 3,
			KickCombo:      2,
			PunchEnergy:    2,
			KickEnergy:     3,
			EnergyRegen:    0.05,
			PunchDisplay:   120 * time.Millisecond,
			KickDisplay:    180 * time.Millisecond,
			SpecialDisplay: 300 * time.Millisecond,
		},
		Projectile: ProjectileConfig{
			Speed:        12,
			Damage:       10,
			TrailLength:  10,
			MuzzleHeight: 40,
			HitWidth:     30,
			HitHeight:    60,
		},
		AI: AIConfig{
			JumpChance:  0.01,
			AttackRange: 40,
		},
		Match: MatchConfig{
			FrameDuration: 16 * time.Millisecond,
			SlowMo:        1,
			Player1:       "brawler",
			Player2:       "tank",
			ClampToArena:  true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Player1Keys: DefaultBindings(1),
		Player2Keys: DefaultBindings(2),
	}
}

// LoadConfig reads the embedded defaults and overlays the file at path, if any.
func LoadConfig(path string) (Config, error) {
	opts := ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}

	var (
		f   *ini.File
		err error
	)
	if path == "" {
		f, err = ini.LoadSources(opts, defaultINI)
	} else {
		f, err = ini.LoadSources(opts, defaultINI, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := f.MapTo(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to map config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	case c.Arena.Ground <= 0 || c.Arena.Ground > c.Arena.Height:
		return fmt.Errorf("ground %v outside arena height %v", c.Arena.Ground, c.Arena.Height)
	case c.Match.FrameDuration <= 0:
		return fmt.Errorf("frame duration must be positive, got %v", c.Match.FrameDuration)
	case c.Match.SlowMo <= 0:
		return fmt.Errorf("slow motion multiplier must be positive, got %v", c.Match.SlowMo)
	case c.Projectile.TrailLength < 0:
		return fmt.Errorf("trail length must not be negative, got %d", c.Projectile.TrailLength)
	}
	if _, ok := LookupPreset(c.Match.Player1); !ok {
		return fmt.Errorf("unknown fighter preset %q for player 1", c.Match.Player1)
	}
	if _, ok := LookupPreset(c.Match.Player2); !ok {
		return fmt.Errorf("unknown fighter preset %q for player 2", c.Match.Player2)
	}
	return nil
}

// FrameStep is the simulated time that passes in one tick.
func (c Config) FrameStep() time.Duration {
	return time.Duration(float64(c.Match.FrameDuration) * c.Match.SlowMo)
}

// TicksPerSecond is the host pacing that matches FrameStep.
func (c Config) TicksPerSecond() int {
	step := c.FrameStep()
	if step <= 0 {
		return 60
	}
	tps := int(time.Second / step)
	if tps < 1 {
		return 1
	}
	return tps
}
