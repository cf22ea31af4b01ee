package main

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededField(vp Viewport) *ParticleField {
	return NewParticleField(vp, rand.New(rand.NewPCG(1, 2)))
}

func TestParticleFieldPopulates(t *testing.T) {
	f := seededField(Viewport{W: 800, H: 600})

	ps := f.Particles()
	require.Len(t, ps, ParticleCount)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 800.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 600.0)
		assert.GreaterOrEqual(t, p.R, 0.4)
		assert.Less(t, p.R, 2.2)
		assert.Less(t, p.VY, -0.149)
		assert.Less(t, p.Alpha, 0.6)
		assert.GreaterOrEqual(t, p.Alpha, 0.1)
		assert.Less(t, p.Color, len(particleColors))
	}
}

func TestParticlesAreRecycled(t *testing.T) {
	f := seededField(Viewport{W: 800, H: 600})
	recycled := make([]bool, ParticleCount)

	prev := f.Particles()
	// The slowest particle needs (600+10)/0.15 ticks to leave the top.
	for i := 0; i < 4200; i++ {
		f.Step()
		cur := f.Particles()
		for j := range cur {
			assert.GreaterOrEqual(t, cur[j].Y, -10.0)
			if cur[j].Y > prev[j].Y {
				recycled[j] = true
				assert.InDelta(t, 610.0, cur[j].Y, 1e-9)
			}
		}
		prev = cur
	}

	for j, ok := range recycled {
		assert.True(t, ok, "particle %d never recycled", j)
	}
}

func TestParticleFieldResizeRepopulates(t *testing.T) {
	f := seededField(Viewport{W: 800, H: 600})
	f.Resize(Viewport{W: 100, H: 50})

	seed := f.Seed()
	assert.Equal(t, 100, seed.W)
	assert.Equal(t, 50, seed.H)
	require.Len(t, seed.Particles, ParticleCount)
	for _, p := range seed.Particles {
		assert.LessOrEqual(t, p.X, 100.0)
		assert.LessOrEqual(t, p.Y, 50.0)
	}
}

func TestParticleSeedIsCompact(t *testing.T) {
	f := seededField(Viewport{W: 1920, H: 1080})
	seed := f.Seed()

	assert.Equal(t, particleColors, seed.Colors)
	for i, p := range seed.Particles {
		raw := f.Particles()[i]
		assert.InDelta(t, raw.X, p.X, 0.0005)
		assert.InDelta(t, raw.VY, p.VY, 0.0005)
		assert.Equal(t, raw.Color, p.Color)
	}

	b, err := json.Marshal([]Patch{{Op: "particles", Seed: &seed}})
	require.NoError(t, err)
	assert.Less(t, len(b), 8*1024, "sent once per resize, not per frame")
}

func TestEmptyField(t *testing.T) {
	assert.True(t, seededField(Viewport{}).Empty())
	assert.True(t, seededField(Viewport{W: 10}).Empty())
	assert.False(t, seededField(Viewport{W: 10, H: 10}).Empty())
}
