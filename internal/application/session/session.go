// Package session owns the per-playthrough world: the player, the
// current level's grid and enemies, the camera, and the lifecycle state
// machine over running, death pause, win pause, and victory. There are
// no package-level globals; everything hangs off the Session the loop
// holds.
package session

import (
	"fmt"

	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// LevelSource serves level descriptors by index; nil means no more
// levels, which is the victory signal rather than an error.
type LevelSource interface {
	Get(index int) *entity.Level
}

// FrameResult is everything one fixed frame produced for the
// presentation collaborators.
type FrameResult struct {
	Events  []entity.Event
	Outcome *system.Outcome
}

// Session is the explicit world object stepped once per fixed frame.
type Session struct {
	cfg    *config.PhysicsConfig
	levels LevelSource

	playerSys *system.PlayerSystem
	enemySys  *system.EnemySystem
	resolver  *system.Resolver

	state      state.SessionState
	levelIndex int
	level      *entity.Level
	grid       *entity.Grid
	player     *entity.Player
	enemies    []*entity.Enemy

	pauseTimer int
	fallDeath  bool

	camX, camY   float64
	viewW, viewH int
}

// New creates a session on level 0 with a fresh score and full lives.
func New(cfg *config.PhysicsConfig, levels LevelSource, viewW, viewH int) (*Session, error) {
	s := &Session{
		cfg:       cfg,
		levels:    levels,
		playerSys: system.NewPlayerSystem(cfg),
		enemySys:  system.NewEnemySystem(cfg),
		resolver:  system.NewResolver(cfg),
		viewW:     viewW,
		viewH:     viewH,
	}
	if !s.loadLevel(0, 0, cfg.Session.StartLives) {
		return nil, fmt.Errorf("no level at index 0")
	}
	return s, nil
}

// loadLevel swaps in the level at index, rebuilding the grid, player
// and enemies. Score and lives are carried across explicitly; nothing
// else survives the swap.
func (s *Session) loadLevel(index, score, lives int) bool {
	lvl := s.levels.Get(index)
	if lvl == nil {
		return false
	}

	s.levelIndex = index
	s.level = lvl
	s.grid = lvl.Grid()

	s.player = entity.NewPlayer(lvl.SpawnX(), lvl.SpawnY())
	s.player.Score = score
	s.player.Lives = lives

	s.enemies = make([]*entity.Enemy, 0, len(lvl.Enemies))
	for _, spawn := range lvl.Enemies {
		ts := lvl.TileSize
		x := float64(spawn.Col*ts) + float64(ts-entity.EnemyWidth)/2
		y := float64((spawn.Row+1)*ts) - entity.EnemyHeight
		e := entity.NewEnemy(spawn.Kind, x, y, spawn.Range, spawn.Dir)
		e.JumpTimer = s.cfg.Enemies.JumperInterval
		e.FireTimer = s.cfg.Enemies.ShooterInterval
		s.enemies = append(s.enemies, e)
	}

	s.state = state.StateRunning
	s.pauseTimer = 0
	s.fallDeath = false
	s.snapCamera()
	return true
}

// Step advances the session one fixed frame.
func (s *Session) Step(in system.InputState) FrameResult {
	switch s.state {
	case state.StateRunning:
		return s.stepRunning(in)
	case state.StateDeathPause:
		s.pauseTimer--
		if s.pauseTimer <= 0 {
			if s.player.Lives > 0 {
				s.loadLevel(s.levelIndex, s.player.Score, s.player.Lives)
			} else {
				s.loadLevel(0, 0, s.cfg.Session.StartLives)
			}
		}
	case state.StateWinPause:
		s.pauseTimer--
		if s.pauseTimer <= 0 {
			if !s.loadLevel(s.levelIndex+1, s.player.Score, s.player.Lives) {
				s.state = state.StateVictory
			}
		}
	case state.StateVictory:
		// Terminal; nothing moves.
	}
	return FrameResult{}
}

func (s *Session) stepRunning(in system.InputState) FrameResult {
	res := FrameResult{
		Events: s.playerSys.Update(s.player, s.grid, in),
	}

	res.Events = append(res.Events, s.enemySys.Update(s.enemies, s.grid)...)

	if s.player.Alive {
		if out := s.resolver.Resolve(s.player, s.enemies); out != nil {
			res.Outcome = out
			if !out.Stomped {
				res.Events = append(res.Events, system.ApplyDamage(s.player, s.cfg)...)
			}
		}
	}

	// Falling out of the level kills regardless of hazards.
	if s.player.Alive && s.player.Y > s.grid.PixelHeight()+s.cfg.Session.FallMargin {
		s.fallDeath = true
		s.player.Lives--
		if s.player.Lives < 0 {
			s.player.Lives = 0
		}
		s.player.Alive = false
		res.Events = append(res.Events, entity.DieEvent{})
	}

	if !s.player.Alive {
		s.state = state.StateDeathPause
		if s.fallDeath {
			s.pauseTimer = s.cfg.Session.FallPauseFrames
		} else {
			s.pauseTimer = s.cfg.Session.DeathPauseFrames
		}
	} else {
		for _, ev := range res.Events {
			if _, ok := ev.(entity.ExitEvent); ok {
				s.state = state.StateWinPause
				s.pauseTimer = s.cfg.Session.WinPauseFrames
				break
			}
		}
	}

	s.updateCamera()
	return res
}

// cameraTarget is the camera top-left that centres the player plus a
// lead offset in the facing direction.
func (s *Session) cameraTarget() (float64, float64) {
	lead := s.cfg.Session.CameraLead * float64(s.player.Facing())
	tx := s.player.X + entity.PlayerWidth/2 + lead - float64(s.viewW)/2
	ty := s.player.Y + entity.PlayerHeight/2 - float64(s.viewH)/2
	return tx, ty
}

// updateCamera eases the camera toward the target and clamps it to the
// level bounds.
func (s *Session) updateCamera() {
	tx, ty := s.cameraTarget()
	f := s.cfg.Session.CameraFactor
	s.camX += (tx - s.camX) * f
	s.camY += (ty - s.camY) * f
	s.clampCamera()
}

func (s *Session) snapCamera() {
	s.camX, s.camY = s.cameraTarget()
	s.clampCamera()
}

func (s *Session) clampCamera() {
	maxX := s.grid.PixelWidth() - float64(s.viewW)
	maxY := s.grid.PixelHeight() - float64(s.viewH)
	if s.camX > maxX {
		s.camX = maxX
	}
	if s.camY > maxY {
		s.camY = maxY
	}
	if s.camX < 0 {
		s.camX = 0
	}
	if s.camY < 0 {
		s.camY = 0
	}
}

// Restart abandons the current run and starts a fresh one at the given
// level index. It reports false if no such level exists.
func (s *Session) Restart(index int) bool {
	return s.loadLevel(index, 0, s.cfg.Session.StartLives)
}

// Player returns the live player entity.
func (s *Session) Player() *entity.Player { return s.player }

// Enemies returns the current level's enemy slice in spawn order.
func (s *Session) Enemies() []*entity.Enemy { return s.enemies }

// Grid returns the current level's mutable tile grid.
func (s *Session) Grid() *entity.Grid { return s.grid }

// Level returns the current level descriptor.
func (s *Session) Level() *entity.Level { return s.level }

// LevelIndex returns the current level index.
func (s *Session) LevelIndex() int { return s.levelIndex }

// State returns the lifecycle state.
func (s *Session) State() state.SessionState { return s.state }

// Camera returns the camera top-left in world pixels.
func (s *Session) Camera() (x, y float64) { return s.camX, s.camY }
