package system

import (
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Outcome is the single player-enemy interaction result of a frame.
// Stomped means the enemy died under the player's feet; otherwise the
// player took contact damage, from the enemy body or from a projectile.
type Outcome struct {
	Stomped    bool
	Enemy      *entity.Enemy
	Projectile bool
}

// Resolver resolves player-versus-enemy contact. Stomp consequences
// (enemy death, bounce, bonus score) are applied here; damage
// consequences are the session's job.
type Resolver struct {
	cfg *config.PhysicsConfig
}

// NewResolver creates a new resolver
func NewResolver(cfg *config.PhysicsConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve checks the player against enemies in spawn order and returns
// at most one outcome; the first match wins, not the nearest. A falling
// player whose bottom edge is less than the stomp depth into the
// enemy's top scores a stomp, any other overlap is a hit. Stomps still
// land during invincibility frames; hits and projectile hits do not.
func (r *Resolver) Resolve(p *entity.Player, enemies []*entity.Enemy) *Outcome {
	invincible := p.IsInvincible()
	px, py, pw, ph := p.Rect()

	for _, e := range enemies {
		if e.Alive {
			ex, ey, ew, eh := e.Rect()
			if overlaps(px, py, pw, ph, ex, ey, ew, eh) {
				if p.VY > 0 && (py+ph)-ey < r.cfg.Damage.StompDepth {
					e.Alive = false
					p.VY = r.cfg.Damage.StompBounce
					p.Score += r.cfg.Score.Stomp
					return &Outcome{Stomped: true, Enemy: e}
				}
				if !invincible {
					return &Outcome{Enemy: e}
				}
			}
		}

		// Projectiles outlive their shooter, so check them even for
		// dead enemies.
		if e.Kind == entity.EnemyShooter && !invincible {
			for _, pr := range e.Projectiles {
				if !pr.Alive {
					continue
				}
				bx, by, bw, bh := pr.Rect()
				if overlaps(px, py, pw, ph, bx, by, bw, bh) {
					pr.Alive = false
					return &Outcome{Enemy: e, Projectile: true}
				}
			}
		}
	}

	return nil
}

// overlaps is an axis-aligned box overlap test with exclusive edges.
func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
