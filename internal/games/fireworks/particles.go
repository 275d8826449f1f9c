package fireworks

import (
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
)

// Particle is one spark. Position is normalized to the surface; velocity is
// in virtual pixels per second, with 1000 px spanning the surface.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Hue     float64
	Drag    float64 // Per-60Hz-frame velocity decay
	Gravity float64
	Sparkle float64 // Affinity for splitting, in [0, 1)
}

// Alpha returns the remaining life as a fraction of the initial one.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Burst emits particles for a short window after it is launched.
type Burst struct {
	T    float64 // Seconds since launch
	X, Y float64
	Hue  float64
	Ring bool // Ring bursts have a narrow speed band, fountains a wide one
}

// Field owns every burst and particle of a show.
type Field struct {
	cfg       *config.FireworksConfig
	rng       *core.Rand
	bursts    []Burst
	particles []Particle
}

// NewField creates an empty field.
func NewField(rng *core.Rand, cfg *config.FireworksConfig) *Field {
	return &Field{
		cfg:       cfg,
		rng:       rng,
		bursts:    make([]Burst, 0, 16),
		particles: make([]Particle, 0, 1024),
	}
}

// Reset drops every burst and particle.
func (f *Field) Reset() {
	f.bursts = f.bursts[:0]
	f.particles = f.particles[:0]
}

// Launch queues a burst at (x, y) with a random hue.
func (f *Field) Launch(x, y float64, ring bool) {
	f.bursts = append(f.bursts, Burst{
		X:    x,
		Y:    y,
		Hue:  f.rng.Range(0, 360),
		Ring: ring,
	})
}

// LaunchRandom queues a burst somewhere in the upper part of the surface.
func (f *Field) LaunchRandom(ring bool) {
	f.Launch(f.rng.Range(0.12, 0.88), f.rng.Range(0.16, 0.55), ring)
}

// Step ages bursts, emits from the live ones, then integrates particles.
func (f *Field) Step(dt float64) {
	f.stepBursts(dt)
	f.stepParticles(dt)
}

func (f *Field) full() bool {
	return f.cfg.MaxParticles > 0 && len(f.particles) >= f.cfg.MaxParticles
}

func (f *Field) stepBursts(dt float64) {
	alive := f.bursts[:0]
	for _, b := range f.bursts {
		b.T += dt
		if b.T > f.cfg.BurstLife {
			continue
		}
		k := int(math.Floor(f.rng.Range(float64(f.cfg.EmitMin), float64(f.cfg.EmitMax))))
		for i := 0; i < k && !f.full(); i++ {
			f.particles = append(f.particles, f.emit(b))
		}
		alive = append(alive, b)
	}
	f.bursts = alive
}

// emit creates one particle from burst b.
func (f *Field) emit(b Burst) Particle {
	r := f.rng
	angle := r.Float64() * 2 * math.Pi

	var speed, life, size float64
	if b.Ring {
		speed = r.Range(220, 340)
		life = r.Range(0.9, 1.35)
		size = r.Range(1.6, 3.2)
	} else {
		speed = r.Range(120, 360) * (0.35 + r.Float64()*0.75)
		life = r.Range(0.75, 1.25)
		size = r.Range(1.3, 3.6)
	}

	return Particle{
		X:       b.X,
		Y:       b.Y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Life:    life,
		MaxLife: life,
		Size:    size,
		Hue:     math.Mod(b.Hue+r.Range(-22, 22)+360, 360),
		Drag:    r.Range(0.965, 0.985),
		Gravity: r.Range(420, 640),
		Sparkle: r.Range(0, 1),
	}
}

func (f *Field) stepParticles(dt float64) {
	next := f.particles[:0]
	var children []Particle

	for _, p := range f.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		decay := math.Pow(p.Drag, dt*60)
		p.VX *= decay
		p.VY *= decay
		p.VY += p.Gravity * dt
		p.X += p.VX * dt / 1000
		p.Y += p.VY * dt / 1000

		if p.Sparkle > f.cfg.SparkleMin && f.rng.Chance(f.cfg.SparkleChance) {
			q := p
			q.VX *= f.rng.Range(0.7, 0.95)
			q.VY *= f.rng.Range(0.7, 0.95)
			q.Size *= f.rng.Range(0.7, 0.95)
			q.Life *= f.rng.Range(0.5, 0.8)
			children = append(children, q)
		}
		next = append(next, p)
	}

	f.particles = next
	for _, q := range children {
		if f.full() {
			break
		}
		f.particles = append(f.particles, q)
	}
}

// Particles returns the live particles.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Bursts returns the bursts still emitting.
func (f *Field) Bursts() []Burst {
	return f.bursts
}
