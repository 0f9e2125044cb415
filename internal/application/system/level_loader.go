package system

import (
	"fmt"

	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level descriptor, resolving
// the character rows through the file's legend. The exit position is
// taken from the first exit cell in the grid.
func LoadLevel(cfg *config.LevelConfig) (*entity.Level, error) {
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("level %s has no rows", cfg.Name)
	}
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 32
	}

	width := len([]rune(cfg.Rows[0]))
	rows := make([][]entity.TileCode, len(cfg.Rows))
	exitCol, exitRow := -1, -1
	for y, line := range cfg.Rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("level %s: row %d is %d cells wide, want %d", cfg.Name, y, len(runes), width)
		}
		rows[y] = make([]entity.TileCode, 0, width)
		for x, ch := range runes {
			name, ok := cfg.Legend[string(ch)]
			if !ok {
				return nil, fmt.Errorf("level %s: row %d col %d: no legend entry for %q", cfg.Name, y, x, string(ch))
			}
			code, err := tileCodeFromName(name)
			if err != nil {
				return nil, fmt.Errorf("level %s: %w", cfg.Name, err)
			}
			if code == entity.TileExit && exitCol < 0 {
				exitCol, exitRow = x, y
			}
			rows[y] = append(rows[y], code)
		}
	}

	lvl := entity.NewLevel(cfg.Name, rows, tileSize)
	lvl.SpawnCol, lvl.SpawnRow = cfg.Spawn.Col, cfg.Spawn.Row
	lvl.ExitCol, lvl.ExitRow = exitCol, exitRow

	for i, spawn := range cfg.Enemies {
		kind, err := enemyKindFromName(spawn.Kind)
		if err != nil {
			return nil, fmt.Errorf("level %s: enemy %d: %w", cfg.Name, i, err)
		}
		lvl.Enemies = append(lvl.Enemies, entity.EnemySpawn{
			Kind:  kind,
			Col:   spawn.Col,
			Row:   spawn.Row,
			Range: spawn.Range,
			Dir:   spawn.Dir,
		})
	}

	return lvl, nil
}

func tileCodeFromName(name string) (entity.TileCode, error) {
	switch name {
	case "air":
		return entity.TileAir, nil
	case "solid":
		return entity.TileSolid, nil
	case "platform":
		return entity.TilePlatform, nil
	case "hazard":
		return entity.TileHazard, nil
	case "coin":
		return entity.TileCoin, nil
	case "exit":
		return entity.TileExit, nil
	default:
		return entity.TileAir, fmt.Errorf("unknown tile type %q", name)
	}
}

func enemyKindFromName(name string) (entity.EnemyKind, error) {
	switch name {
	case "walker":
		return entity.EnemyWalker, nil
	case "jumper":
		return entity.EnemyJumper, nil
	case "shooter":
		return entity.EnemyShooter, nil
	default:
		return entity.EnemyWalker, fmt.Errorf("unknown enemy kind %q", name)
	}
}

// LevelProvider serves level descriptors by index in manifest order.
// A nil result is the terminal signal: no more levels, the game is won.
type LevelProvider struct {
	levels []*entity.Level
}

// NewLevelProvider loads every level named by the manifest, in order.
func NewLevelProvider(loader *config.Loader) (*LevelProvider, error) {
	manifest, err := loader.LoadManifest()
	if err != nil {
		return nil, err
	}

	levels := make([]*entity.Level, 0, len(manifest.Levels))
	for _, name := range manifest.Levels {
		cfg, err := loader.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		lvl, err := LoadLevel(cfg)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	return &LevelProvider{levels: levels}, nil
}

// Get returns the level at index, or nil when the index is past the end.
func (p *LevelProvider) Get(index int) *entity.Level {
	if index < 0 || index >= len(p.levels) {
		return nil
	}
	return p.levels[index]
}

// Count returns the number of levels.
func (p *LevelProvider) Count() int {
	return len(p.levels)
}
