package main

import (
	"math"
	"math/rand/v2"
)

// ParticleCount is the number of dots kept alive on the background.
const ParticleCount = 90

// Particle colors, completed with the alpha on the client.
var particleColors = []string{
	"rgba(124,58,237,",
	"rgba(34,211,238,",
	"rgba(245,158,11,",
}

// Particle is a single drifting dot.
type Particle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	R     float64 `json:"r"`
	Alpha float64 `json:"a"`
	Color int     `json:"c"`
}

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	W, H int
}

// Seed is the starting state of a field. The browser steps it once per
// display frame with the same rules as Step and redraws locally.
type Seed struct {
	W         int        `json:"w"`
	H         int        `json:"h"`
	Colors    []string   `json:"colors"`
	Particles []Particle `json:"particles"`
}

// ParticleField owns the particles for one surface.
type ParticleField struct {
	w, h      float64
	rng       *rand.Rand
	particles []Particle
}

func NewParticleField(vp Viewport, rng *rand.Rand) *ParticleField {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &ParticleField{rng: rng}
	f.Resize(vp)
	return f
}

// Resize re-measures the surface and repopulates the field.
func (f *ParticleField) Resize(vp Viewport) {
	f.w, f.h = float64(vp.W), float64(vp.H)
	f.particles = make([]Particle, ParticleCount)
	for i := range f.particles {
		f.reset(&f.particles[i], true)
	}
}

func (f *ParticleField) reset(p *Particle, initial bool) {
	p.X = f.rng.Float64() * f.w
	if initial {
		p.Y = f.rng.Float64() * f.h
	} else {
		p.Y = f.h + 10
	}
	p.R = f.rng.Float64()*1.8 + 0.4
	p.VX = (f.rng.Float64() - 0.5) * 0.3
	p.VY = -(f.rng.Float64()*0.5 + 0.15)
	p.Alpha = f.rng.Float64()*0.5 + 0.1
	p.Color = f.rng.IntN(len(particleColors))
}

// Step advances every particle by one tick and recycles the ones that
// drifted above the top edge.
func (f *ParticleField) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.Y < -10 {
			f.reset(p, false)
		}
	}
}

// Seed snapshots the field for the browser, rounded to three decimals.
func (f *ParticleField) Seed() Seed {
	ps := make([]Particle, len(f.particles))
	for i, p := range f.particles {
		ps[i] = Particle{
			X:     round3(p.X),
			Y:     round3(p.Y),
			VX:    round3(p.VX),
			VY:    round3(p.VY),
			R:     round3(p.R),
			Alpha: round3(p.Alpha),
			Color: p.Color,
		}
	}
	return Seed{W: int(f.w), H: int(f.h), Colors: particleColors, Particles: ps}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Particles returns a copy of the current particle state.
func (f *ParticleField) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Empty reports whether there is no surface to draw on.
func (f *ParticleField) Empty() bool {
	return f.w <= 0 || f.h <= 0
}
