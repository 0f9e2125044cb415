package system

import (
	"math"

	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// PlayerSystem advances the player one fixed frame: input intent, jump
// forgiveness, gravity, axis-separated tile collision, and the tile
// interaction scan. It mutates the player and the grid (coin cells) and
// returns the frame's events; it never touches audio or rendering.
type PlayerSystem struct {
	cfg *config.PhysicsConfig
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.PhysicsConfig) *PlayerSystem {
	return &PlayerSystem{cfg: cfg}
}

// Update runs one frame of the player state machine. A dead player is a
// no-op; the session owns respawn timing.
func (s *PlayerSystem) Update(p *entity.Player, grid *entity.Grid, in InputState) []entity.Event {
	if !p.Alive {
		return nil
	}

	var events []entity.Event

	if p.IframeTimer > 0 {
		p.IframeTimer--
	}

	// Horizontal intent
	mv := s.cfg.Move
	switch {
	case in.Left && !in.Right:
		p.VX = -mv.MaxSpeed
		p.FacingRight = false
	case in.Right && !in.Left:
		p.VX = mv.MaxSpeed
		p.FacingRight = true
	default:
		p.VX *= mv.Friction
		if math.Abs(p.VX) < mv.StopEpsilon {
			p.VX = 0
		}
	}

	// Coyote time: a jump still succeeds for a few frames after the
	// ground disappears under the player.
	jc := s.cfg.Jump
	if p.OnGround {
		p.CoyoteTimer = jc.CoyoteFrames
	} else if p.CoyoteTimer > 0 {
		p.CoyoteTimer--
	}

	// Jump buffering: an early press is remembered briefly.
	if in.JumpPressed {
		p.JumpBuffered = true
		p.JumpBufferTimer = jc.BufferFrames
	} else if p.JumpBuffered {
		p.JumpBufferTimer--
		if p.JumpBufferTimer <= 0 {
			p.JumpBuffered = false
		}
	}

	// Jump trigger. The impulse is instantaneous; gravity and collision
	// resume next frame.
	if p.JumpBuffered && p.CoyoteTimer > 0 {
		p.VY = jc.Velocity
		p.OnGround = false
		p.CoyoteTimer = 0
		p.JumpBuffered = false
		p.JumpBufferTimer = 0
		return append(events, entity.JumpEvent{})
	}

	// Variable jump height: releasing jump early cuts the ascent.
	if in.JumpReleased && p.VY < jc.Velocity*jc.ReleaseThreshold {
		p.VY *= jc.ReleaseDamp
	}

	// Gravity
	p.VY += s.cfg.World.Gravity
	if p.VY > s.cfg.World.MaxFallSpeed {
		p.VY = s.cfg.World.MaxFallSpeed
	}

	s.moveX(p, grid)
	if s.moveY(p, grid) {
		events = append(events, entity.LandEvent{})
	}

	return s.scanTiles(p, grid, events)
}

// moveX advances the X axis and resolves against solid tiles at the
// leading edge, snapping flush on the first hit.
func (s *PlayerSystem) moveX(p *entity.Player, grid *entity.Grid) {
	p.X += p.VX
	if p.VX == 0 {
		return
	}

	ts := float64(grid.TileSize)
	top, bottom := tileSpan(p.Y, p.Y+entity.PlayerHeight, ts)

	if p.VX > 0 {
		col := lastTile(p.X+entity.PlayerWidth, ts)
		for row := top; row <= bottom; row++ {
			if grid.SolidAt(col, row) {
				p.X = float64(col)*ts - entity.PlayerWidth
				p.VX = 0
				return
			}
		}
	} else {
		col := firstTile(p.X, ts)
		for row := top; row <= bottom; row++ {
			if grid.SolidAt(col, row) {
				p.X = float64(col+1) * ts
				p.VX = 0
				return
			}
		}
	}
}

// moveY advances the Y axis. Falling rests on solid and platform tiles;
// rising collides against solid only, so one-way platforms are passable
// from below. Returns true on the airborne-to-grounded transition.
func (s *PlayerSystem) moveY(p *entity.Player, grid *entity.Grid) bool {
	p.Y += p.VY

	ts := float64(grid.TileSize)
	left, right := tileSpan(p.X, p.X+entity.PlayerWidth, ts)
	wasOnGround := p.OnGround
	p.OnGround = false

	if p.VY > 0 {
		row := lastTile(p.Y+entity.PlayerHeight, ts)
		for col := left; col <= right; col++ {
			code := grid.CodeAt(col, row)
			if code == entity.TileSolid || code == entity.TilePlatform {
				p.Y = float64(row)*ts - entity.PlayerHeight
				p.VY = 0
				p.OnGround = true
				return !wasOnGround
			}
		}
	} else if p.VY < 0 {
		row := firstTile(p.Y, ts)
		for col := left; col <= right; col++ {
			if grid.SolidAt(col, row) {
				p.Y = float64(row+1) * ts
				p.VY = 0
				return false
			}
		}
	}

	return false
}

// scanTiles applies hazard, coin and exit interactions over every cell
// the hitbox currently overlaps.
func (s *PlayerSystem) scanTiles(p *entity.Player, grid *entity.Grid, events []entity.Event) []entity.Event {
	ts := float64(grid.TileSize)
	left, right := tileSpan(p.X, p.X+entity.PlayerWidth, ts)
	top, bottom := tileSpan(p.Y, p.Y+entity.PlayerHeight, ts)

	exit := false
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			switch grid.CodeAt(col, row) {
			case entity.TileHazard:
				if p.Alive && !p.IsInvincible() {
					events = append(events, ApplyDamage(p, s.cfg)...)
				}
			case entity.TileCoin:
				if grid.Consume(col, row) {
					p.Score += s.cfg.Score.Coin
					events = append(events, entity.CollectEvent{Col: col, Row: row})
				}
			case entity.TileExit:
				exit = true
			}
		}
	}
	if exit {
		events = append(events, entity.ExitEvent{})
	}
	return events
}

// ApplyDamage runs the shared damage consequence for hazards, enemy
// contact, and projectiles: lose a life, then either knock back with
// invincibility frames or die when no lives remain. Lives never go
// negative.
func ApplyDamage(p *entity.Player, cfg *config.PhysicsConfig) []entity.Event {
	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Alive = false
		return []entity.Event{entity.HurtEvent{}, entity.DieEvent{}}
	}
	p.IframeTimer = cfg.Damage.IframeFrames
	p.VY = cfg.Damage.KnockbackVY
	return []entity.Event{entity.HurtEvent{}}
}
