package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

func createTestConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		World: config.WorldConfig{Gravity: 0.7, MaxFallSpeed: 14},
		Move:  config.MoveConfig{MaxSpeed: 3.2, Friction: 0.8, StopEpsilon: 0.1},
		Jump: config.JumpConfig{
			Velocity: -13.5, ReleaseDamp: 0.5, ReleaseThreshold: 0.4,
			CoyoteFrames: 6, BufferFrames: 6,
		},
		Damage: config.DamageConfig{IframeFrames: 60, KnockbackVY: -8, StompBounce: -9, StompDepth: 16},
		Score:  config.ScoreConfig{Coin: 10, Stomp: 50},
		Enemies: config.EnemyConfig{
			WalkerSpeed: 1.2, JumperInterval: 90, JumperImpulse: -10,
			ShooterInterval: 120, ProjectileSpeed: 3.5, ProjectileMargin: 200,
		},
		Session: config.SessionConfig{
			StartLives: 3, DeathPauseFrames: 120, FallPauseFrames: 60, WinPauseFrames: 90,
			FallMargin: 64, CameraFactor: 0.1, CameraLead: 48,
		},
	}
}

// createTestLevel builds a level from character rows with its spawn at
// the given tile.
func createTestLevel(name string, spawnCol, spawnRow int, rows ...string) *entity.Level {
	codes := make([][]entity.TileCode, len(rows))
	for y, line := range rows {
		codes[y] = make([]entity.TileCode, len(line))
		for x, ch := range line {
			switch ch {
			case '#':
				codes[y][x] = entity.TileSolid
			case 'o':
				codes[y][x] = entity.TileCoin
			case '^':
				codes[y][x] = entity.TileHazard
			case 'E':
				codes[y][x] = entity.TileExit
			default:
				codes[y][x] = entity.TileAir
			}
		}
	}
	lvl := entity.NewLevel(name, codes, 32)
	lvl.SpawnCol, lvl.SpawnRow = spawnCol, spawnRow
	return lvl
}

type stubLevels struct {
	levels []*entity.Level
}

func (s *stubLevels) Get(index int) *entity.Level {
	if index < 0 || index >= len(s.levels) {
		return nil
	}
	return s.levels[index]
}

// exitAtSpawn is a level where the player stands on the exit tile, so
// the very first frame wins it.
func exitAtSpawn(name string) *entity.Level {
	return createTestLevel(name, 0, 1,
		"....",
		"E...",
		"####",
	)
}

// bottomlessPit is a level with no floor at all; the player falls out.
func bottomlessPit(name string) *entity.Level {
	return createTestLevel(name, 0, 1,
		"....",
		"....",
		"....",
	)
}

func stepFrames(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Step(system.InputState{})
	}
}

func TestNew_FailsWithoutLevels(t *testing.T) {
	_, err := New(createTestConfig(), &stubLevels{}, 640, 360)
	assert.Error(t, err)
}

func TestNew_StartsOnFirstLevel(t *testing.T) {
	s, err := New(createTestConfig(), &stubLevels{levels: []*entity.Level{exitAtSpawn("one")}}, 640, 360)
	require.NoError(t, err)

	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, 3, s.Player().Lives)
	assert.Equal(t, len(s.Level().Enemies), len(s.Enemies()))
}

func TestSession_WinAdvancesAndCarriesScore(t *testing.T) {
	levels := &stubLevels{levels: []*entity.Level{exitAtSpawn("one"), exitAtSpawn("two")}}
	s, err := New(createTestConfig(), levels, 640, 360)
	require.NoError(t, err)

	res := s.Step(system.InputState{})
	require.Equal(t, state.StateWinPause, s.State())

	found := false
	for _, ev := range res.Events {
		if _, ok := ev.(entity.ExitEvent); ok {
			found = true
		}
	}
	require.True(t, found)

	s.Player().Score = 70
	stepFrames(s, 90)

	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, 70, s.Player().Score)
	assert.Equal(t, 3, s.Player().Lives)
}

func TestSession_VictoryAfterLastLevel(t *testing.T) {
	levels := &stubLevels{levels: []*entity.Level{exitAtSpawn("only")}}
	s, err := New(createTestConfig(), levels, 640, 360)
	require.NoError(t, err)

	s.Step(system.InputState{})
	require.Equal(t, state.StateWinPause, s.State())

	stepFrames(s, 90)
	assert.Equal(t, state.StateVictory, s.State())

	// Victory is terminal
	stepFrames(s, 10)
	assert.Equal(t, state.StateVictory, s.State())
	assert.Equal(t, 0, s.LevelIndex())
}

func TestSession_FallDeathUsesShortPause(t *testing.T) {
	levels := &stubLevels{levels: []*entity.Level{bottomlessPit("pit")}}
	s, err := New(createTestConfig(), levels, 640, 360)
	require.NoError(t, err)

	died := false
	for i := 0; i < 200 && !died; i++ {
		res := s.Step(system.InputState{})
		for _, ev := range res.Events {
			if _, ok := ev.(entity.DieEvent); ok {
				died = true
			}
		}
	}

	require.True(t, died)
	require.Equal(t, state.StateDeathPause, s.State())
	assert.Equal(t, 2, s.Player().Lives)

	// The fall pause is 60 frames, shorter than the regular death pause
	stepFrames(s, 59)
	assert.Equal(t, state.StateDeathPause, s.State())

	stepFrames(s, 1)
	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, 2, s.Player().Lives)
	assert.Equal(t, 0, s.LevelIndex())
}

func TestSession_RespawnKeepsScore(t *testing.T) {
	levels := &stubLevels{levels: []*entity.Level{bottomlessPit("pit")}}
	s, err := New(createTestConfig(), levels, 640, 360)
	require.NoError(t, err)

	s.Player().Score = 120

	for i := 0; i < 200 && s.State() == state.StateRunning; i++ {
		s.Step(system.InputState{})
	}
	require.Equal(t, state.StateDeathPause, s.State())

	stepFrames(s, 60)
	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, 120, s.Player().Score)
}

func TestSession_GameOverResetsRun(t *testing.T) {
	levels := &stubLevels{levels: []*entity.Level{bottomlessPit("pit")}}
	s, err := New(createTestConfig(), levels, 640, 360)
	require.NoError(t, err)

	s.Player().Score = 500
	s.Player().Lives = 1

	for i := 0; i < 200 && s.State() == state.StateRunning; i++ {
		s.Step(system.InputState{})
	}
	require.Equal(t, state.StateDeathPause, s.State())
	require.Equal(t, 0, s.Player().Lives)

	stepFrames(s, 60)

	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 0, s.Player().Score)
	assert.Equal(t, 3, s.Player().Lives)
}

func TestSession_CoinsAreRestoredOnRespawn(t *testing.T) {
	// Coin directly on the spawn tile, floor that ends in a pit
	lvl := createTestLevel("coins", 0, 1,
		"....",
		"o...",
		"#...",
	)
	s, err := New(createTestConfig(), &stubLevels{levels: []*entity.Level{lvl}}, 640, 360)
	require.NoError(t, err)

	// First frame collects the coin
	s.Step(system.InputState{})
	require.Equal(t, 10, s.Player().Score)

	// Walk off into the pit and die
	for i := 0; i < 400 && s.State() == state.StateRunning; i++ {
		s.Step(system.InputState{Right: true})
	}
	require.Equal(t, state.StateDeathPause, s.State())
	stepFrames(s, 60)
	require.Equal(t, state.StateRunning, s.State())

	// Fresh grid has the coin back; score was kept
	assert.Equal(t, entity.TileCoin, s.Grid().CodeAt(0, 1))
	assert.Equal(t, 10, s.Player().Score)
}

func TestSession_ShooterFireReachesFrameEvents(t *testing.T) {
	lvl := createTestLevel("turret", 0, 1,
		"..........",
		"..........",
		"##########",
	)
	lvl.Enemies = []entity.EnemySpawn{{Kind: entity.EnemyShooter, Col: 8, Row: 1}}
	s, err := New(createTestConfig(), &stubLevels{levels: []*entity.Level{lvl}}, 640, 360)
	require.NoError(t, err)

	fired := false
	for i := 0; i < 120; i++ {
		res := s.Step(system.InputState{})
		for _, ev := range res.Events {
			if _, ok := ev.(entity.ShootEvent); ok {
				fired = true
			}
		}
		if i < 119 {
			require.False(t, fired, "fired before the interval elapsed at frame %d", i)
		}
	}

	assert.True(t, fired)
	require.Len(t, s.Enemies(), 1)
	assert.Len(t, s.Enemies()[0].Projectiles, 2)
}

func TestSession_Restart(t *testing.T) {
	levels := &stubLevels{levels: []*entity.Level{exitAtSpawn("one"), exitAtSpawn("two")}}
	s, err := New(createTestConfig(), levels, 640, 360)
	require.NoError(t, err)

	s.Player().Score = 40
	s.Step(system.InputState{})
	stepFrames(s, 90)
	require.Equal(t, 1, s.LevelIndex())

	require.True(t, s.Restart(0))
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, 0, s.Player().Score)
	assert.Equal(t, 3, s.Player().Lives)

	assert.False(t, s.Restart(5))
}

func TestSession_CameraStaysInsideBounds(t *testing.T) {
	// Level narrower than the view
	lvl := createTestLevel("tiny", 0, 1,
		"....",
		"....",
		"####",
	)
	s, err := New(createTestConfig(), &stubLevels{levels: []*entity.Level{lvl}}, 640, 360)
	require.NoError(t, err)

	stepFrames(s, 30)

	x, y := s.Camera()
	assert.LessOrEqual(t, x, 0.0)
	assert.LessOrEqual(t, y, 0.0)
}
