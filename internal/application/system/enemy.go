package system

import (
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// EnemySystem advances every enemy one fixed frame. Each update is a
// pure function of the enemy and the tile grid; enemies never interact
// with each other or read the player.
type EnemySystem struct {
	cfg *config.PhysicsConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig) *EnemySystem {
	return &EnemySystem{cfg: cfg}
}

// Update advances all enemies and returns the events they raised. Dead
// shooters keep their in-flight projectiles moving until those die on
// their own.
func (s *EnemySystem) Update(enemies []*entity.Enemy, grid *entity.Grid) []entity.Event {
	var events []entity.Event
	for _, e := range enemies {
		if !e.Alive {
			if e.Kind == entity.EnemyShooter {
				s.updateProjectiles(e, grid)
			}
			continue
		}

		switch e.Kind {
		case entity.EnemyWalker:
			s.updateWalker(e, grid)
		case entity.EnemyJumper:
			s.updateJumper(e, grid)
		case entity.EnemyShooter:
			events = append(events, s.updateShooter(e, grid)...)
		}
	}
	return events
}

// updateWalker patrols horizontally, reversing at the patrol bounds, at
// walls, and at ledges, then falls and rests on the floor.
func (s *EnemySystem) updateWalker(e *entity.Enemy, grid *entity.Grid) {
	ts := float64(grid.TileSize)

	e.VX = float64(e.Dir) * s.cfg.Enemies.WalkerSpeed
	e.X += e.VX

	// Patrol bounds, clamped to the boundary
	if e.X > e.OriginX+e.Range {
		e.X = e.OriginX + e.Range
		e.Dir = -1
	} else if e.X < e.OriginX-e.Range {
		e.X = e.OriginX - e.Range
		e.Dir = 1
	}

	// Wall at the leading edge
	top, bottom := tileSpan(e.Y, e.Y+entity.EnemyHeight, ts)
	if e.Dir > 0 {
		col := lastTile(e.X+entity.EnemyWidth, ts)
		for row := top; row <= bottom; row++ {
			if grid.SolidAt(col, row) {
				e.X = float64(col)*ts - entity.EnemyWidth
				e.Dir = -1
				break
			}
		}
	} else {
		col := firstTile(e.X, ts)
		for row := top; row <= bottom; row++ {
			if grid.SolidAt(col, row) {
				e.X = float64(col+1) * ts
				e.Dir = 1
				break
			}
		}
	}

	// Ledge ahead: turn around instead of walking off
	if e.VY == 0 {
		leadX := e.X - 1
		if e.Dir > 0 {
			leadX = e.X + entity.EnemyWidth
		}
		col := firstTile(leadX, ts)
		row := firstTile(e.Y+entity.EnemyHeight, ts)
		code := grid.CodeAt(col, row)
		if code != entity.TileSolid && code != entity.TilePlatform {
			e.Dir = -e.Dir
		}
	}

	s.applyGravity(e, grid)
}

// updateJumper patrols like a walker and fires a fixed upward impulse
// whenever its timer elapses while resting.
func (s *EnemySystem) updateJumper(e *entity.Enemy, grid *entity.Grid) {
	s.updateWalker(e, grid)

	e.JumpTimer--
	if e.JumpTimer <= 0 {
		e.JumpTimer = s.cfg.Enemies.JumperInterval
		if e.VY == 0 {
			e.VY = s.cfg.Enemies.JumperImpulse
		}
	}
}

// updateShooter holds position, spawning a projectile pair from its
// left and right edges on a fixed interval. Firing raises a ShootEvent.
func (s *EnemySystem) updateShooter(e *entity.Enemy, grid *entity.Grid) []entity.Event {
	s.applyGravity(e, grid)

	var events []entity.Event
	e.FireTimer--
	if e.FireTimer <= 0 {
		e.FireTimer = s.cfg.Enemies.ShooterInterval
		speed := s.cfg.Enemies.ProjectileSpeed
		muzzleY := e.Y + (entity.EnemyHeight-entity.ProjectileHeight)/2
		e.Projectiles = append(e.Projectiles,
			entity.NewProjectile(e.X-entity.ProjectileWidth, muzzleY, -speed),
			entity.NewProjectile(e.X+entity.EnemyWidth, muzzleY, speed),
		)
		events = append(events, entity.ShootEvent{})
	}

	s.updateProjectiles(e, grid)
	return events
}

// updateProjectiles advances the shooter's projectiles, killing them on
// wall impact or far outside the level, and prunes the dead ones.
func (s *EnemySystem) updateProjectiles(e *entity.Enemy, grid *entity.Grid) {
	ts := float64(grid.TileSize)
	margin := s.cfg.Enemies.ProjectileMargin

	for _, pr := range e.Projectiles {
		if !pr.Alive {
			continue
		}
		pr.X += pr.VX

		tipX := pr.X
		if pr.VX > 0 {
			tipX = pr.X + entity.ProjectileWidth
		}
		if grid.SolidAt(firstTile(tipX, ts), firstTile(pr.Y+entity.ProjectileHeight/2, ts)) {
			pr.Alive = false
			continue
		}
		if pr.X < -margin || pr.X > grid.PixelWidth()+margin {
			pr.Alive = false
		}
	}

	live := e.Projectiles[:0]
	for _, pr := range e.Projectiles {
		if pr.Alive {
			live = append(live, pr)
		}
	}
	e.Projectiles = live
}

// applyGravity accelerates the enemy downward and rests it on the first
// solid or platform tile under its feet. Landing is unconditional; no
// grounded state is tracked for enemies.
func (s *EnemySystem) applyGravity(e *entity.Enemy, grid *entity.Grid) {
	ts := float64(grid.TileSize)

	e.VY += s.cfg.World.Gravity
	if e.VY > s.cfg.World.MaxFallSpeed {
		e.VY = s.cfg.World.MaxFallSpeed
	}
	e.Y += e.VY

	if e.VY > 0 {
		row := lastTile(e.Y+entity.EnemyHeight, ts)
		left, right := tileSpan(e.X, e.X+entity.EnemyWidth, ts)
		for col := left; col <= right; col++ {
			code := grid.CodeAt(col, row)
			if code == entity.TileSolid || code == entity.TilePlatform {
				e.Y = float64(row)*ts - entity.EnemyHeight
				e.VY = 0
				return
			}
		}
	}
}
