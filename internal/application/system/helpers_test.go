package system

import (
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

func createTestConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		World: config.WorldConfig{
			Gravity:      0.7,
			MaxFallSpeed: 14,
		},
		Move: config.MoveConfig{
			MaxSpeed:    3.2,
			Friction:    0.8,
			StopEpsilon: 0.1,
		},
		Jump: config.JumpConfig{
			Velocity:         -13.5,
			ReleaseDamp:      0.5,
			ReleaseThreshold: 0.4,
			CoyoteFrames:     6,
			BufferFrames:     6,
		},
		Damage: config.DamageConfig{
			IframeFrames: 60,
			KnockbackVY:  -8,
			StompBounce:  -9,
			StompDepth:   16,
		},
		Score: config.ScoreConfig{
			Coin:  10,
			Stomp: 50,
		},
		Enemies: config.EnemyConfig{
			WalkerSpeed:      1.2,
			JumperInterval:   90,
			JumperImpulse:    -10,
			ShooterInterval:  120,
			ProjectileSpeed:  3.5,
			ProjectileMargin: 200,
		},
		Session: config.SessionConfig{
			StartLives:       3,
			DeathPauseFrames: 120,
			FallPauseFrames:  60,
			WinPauseFrames:   90,
			FallMargin:       64,
		},
	}
}

// createTestGrid builds a 32px grid from character rows:
// '#' solid, '-' platform, '^' hazard, 'o' coin, 'E' exit, anything else air.
func createTestGrid(rows ...string) *entity.Grid {
	codes := make([][]entity.TileCode, len(rows))
	for y, line := range rows {
		codes[y] = make([]entity.TileCode, len(line))
		for x, ch := range line {
			switch ch {
			case '#':
				codes[y][x] = entity.TileSolid
			case '-':
				codes[y][x] = entity.TilePlatform
			case '^':
				codes[y][x] = entity.TileHazard
			case 'o':
				codes[y][x] = entity.TileCoin
			case 'E':
				codes[y][x] = entity.TileExit
			default:
				codes[y][x] = entity.TileAir
			}
		}
	}
	return entity.NewGrid(codes, 32)
}

func createTestPlayer(x, y float64) *entity.Player {
	p := entity.NewPlayer(x, y)
	p.Lives = 3
	return p
}

func hasEvent[T entity.Event](events []entity.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			return true
		}
	}
	return false
}
