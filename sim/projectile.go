package sim

import (
	"image/color"
	"math"
)

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Bullet is a projectile fired by a fighter.
type Bullet struct {
	X, Y   float64
	VX     float64
	Color  color.NRGBA
	Damage float64

	// Owner is never hit by its own bullet.
	Owner  *Fighter
	Active bool

	trail    []Point
	trailMax int
}

// Trail returns recent positions, oldest first.
func (b *Bullet) Trail() []Point {
	return b.trail
}

// Update advances the bullet one frame and deactivates it outside [0, width].
func (b *Bullet) Update(width float64) {
	b.X += b.VX

	if b.trailMax > 0 {
		pt := Point{X: b.X, Y: b.Y}
		if len(b.trail) < b.trailMax {
			b.trail = append(b.trail, pt)
		} else {
			copy(b.trail, b.trail[1:])
			b.trail[len(b.trail)-1] = pt
		}
	}

	if b.X < 0 || b.X > width {
		b.Active = false
	}
}

// Draw renders the fading trail followed by the bullet head.
func (b *Bullet) Draw(c Canvas) {
	n := len(b.trail)
	for i, pt := range b.trail {
		trail := ColorBullet1
		trail.A = uint8(255 * float64(i) / float64(n))
		c.SetFill(trail)
		c.FillCircle(pt.X, pt.Y, float64(i)*0.7)
	}
	c.SetFill(b.Color)
	c.FillCircle(b.X, b.Y, 4)
}

// Projectiles owns every live bullet. Slice order is spawn order.
type Projectiles struct {
	cfg     ProjectileConfig
	flash   int
	audio   Audio
	bullets []*Bullet
}

// NewProjectiles creates an empty bullet collection.
func NewProjectiles(cfg ProjectileConfig, hitFlash int, audio Audio) *Projectiles {
	if audio == nil {
		audio = Discard{}
	}
	return &Projectiles{
		cfg:     cfg,
		flash:   hitFlash,
		audio:   audio,
		bullets: make([]*Bullet, 0, 16),
	}
}

// Spawn fires a bullet from the shooter's muzzle in its facing direction.
func (p *Projectiles) Spawn(shooter *Fighter) *Bullet {
	b := &Bullet{
		X:        shooter.X,
		Y:        shooter.Y - p.cfg.MuzzleHeight,
		VX:       p.cfg.Speed * shooter.Facing,
		Color:    shooter.BulletColor,
		Damage:   p.cfg.Damage,
		Owner:    shooter,
		Active:   true,
		trail:    make([]Point, 0, p.cfg.TrailLength),
		trailMax: p.cfg.TrailLength,
	}
	p.bullets = append(p.bullets, b)
	p.audio.Play(CueGun, true)
	return b
}

// Hits reports whether b overlaps f's hit box.
func (p *Projectiles) Hits(b *Bullet, f *Fighter) bool {
	return math.Abs(b.X-f.X) < p.cfg.HitWidth && math.Abs(b.Y-f.Y) < p.cfg.HitHeight
}

// Step advances every bullet, applies hits and drops inactive bullets.
// It returns the number of fighters hit.
func (p *Projectiles) Step(width float64, fighters []*Fighter) int {
	hits := 0
	for _, b := range p.bullets {
		b.Update(width)

		for _, f := range fighters {
			if !b.Active || f == b.Owner {
				continue
			}
			if p.Hits(b, f) {
				f.TakeDamage(b.Damage, p.flash)
				p.audio.Play(CueHit, true)
				b.Active = false
				hits++
			}
		}
	}

	live := p.bullets[:0]
	for _, b := range p.bullets {
		if b.Active {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(p.bullets); i++ {
		p.bullets[i] = nil
	}
	p.bullets = live
	return hits
}

// Bullets returns live bullets in spawn order.
func (p *Projectiles) Bullets() []*Bullet {
	return p.bullets
}

// Len is the number of live bullets.
func (p *Projectiles) Len() int {
	return len(p.bullets)
}

// Draw renders bullets in spawn order.
func (p *Projectiles) Draw(c Canvas) {
	for _, b := range p.bullets {
		b.Draw(c)
	}
}
