package playing

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const maxParticles = 256

// particle is a short-lived decorative square in world coordinates.
type particle struct {
	x, y   float64
	vx, vy float64
	life   int
	total  int
	size   float64
	col    color.RGBA
}

// particlePool is a fixed-capacity pool of cosmetic particles. It never
// feeds back into the simulation; it only reads frame results.
type particlePool struct {
	particles []particle
	rng       *rand.Rand
}

func newParticlePool() *particlePool {
	return &particlePool{
		particles: make([]particle, 0, maxParticles),
		rng:       rand.New(rand.NewSource(1)),
	}
}

// Spawn emits count particles bursting out of (x, y).
func (pp *particlePool) Spawn(x, y float64, count int, col color.RGBA, life int) {
	for i := 0; i < count; i++ {
		if len(pp.particles) >= maxParticles {
			return
		}
		pp.particles = append(pp.particles, particle{
			x:     x,
			y:     y,
			vx:    (pp.rng.Float64() - 0.5) * 3,
			vy:    -pp.rng.Float64()*2 - 0.5,
			life:  life,
			total: life,
			size:  pp.rng.Float64()*2 + 2,
			col:   col,
		})
	}
}

// Update advances all particles by one frame and prunes dead ones.
func (pp *particlePool) Update() {
	live := pp.particles[:0]
	for i := range pp.particles {
		p := &pp.particles[i]
		p.life--
		if p.life <= 0 {
			continue
		}
		p.x += p.vx
		p.y += p.vy
		p.vy += 0.1
		live = append(live, *p)
	}
	pp.particles = live
}

// Draw renders all particles, fading them out over their lifetime.
func (pp *particlePool) Draw(screen *ebiten.Image, camX, camY float64) {
	for i := range pp.particles {
		p := &pp.particles[i]
		alpha := float64(p.life) / float64(p.total)
		c := color.RGBA{
			uint8(float64(p.col.R) * alpha),
			uint8(float64(p.col.G) * alpha),
			uint8(float64(p.col.B) * alpha),
			uint8(float64(p.col.A) * alpha),
		}
		ebitenutil.DrawRect(screen, p.x-camX, p.y-camY, p.size, p.size, c)
	}
}

// Reset drops all live particles.
func (pp *particlePool) Reset() {
	pp.particles = pp.particles[:0]
}

// Count returns the number of live particles.
func (pp *particlePool) Count() int {
	return len(pp.particles)
}
