package entity

// EnemySpawn is a static enemy placement inside a level descriptor.
// Col/Row are tile coordinates; Range is the patrol half-width in pixels.
type EnemySpawn struct {
	Kind  EnemyKind
	Col   int
	Row   int
	Range float64
	Dir   int
}

// Level is an immutable level descriptor. The tile rows are copied into a
// fresh Grid on every load so that coin consumption never leaks between
// runs of the same level.
type Level struct {
	Name     string
	Width    int
	Height   int
	TileSize int

	SpawnCol, SpawnRow int
	ExitCol, ExitRow   int

	rows    [][]TileCode
	Enemies []EnemySpawn
}

// NewLevel builds a level descriptor from row-major tile codes.
func NewLevel(name string, rows [][]TileCode, tileSize int) *Level {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return &Level{
		Name:     name,
		Width:    width,
		Height:   len(rows),
		TileSize: tileSize,
		rows:     rows,
	}
}

// Grid materialises a fresh mutable grid from the descriptor.
func (l *Level) Grid() *Grid {
	rows := make([][]TileCode, len(l.rows))
	for y, row := range l.rows {
		rows[y] = make([]TileCode, len(row))
		copy(rows[y], row)
	}
	return NewGrid(rows, l.TileSize)
}

// SpawnX returns the spawn position in pixels (hitbox top-left), placing
// the player bottom-centred on the spawn tile.
func (l *Level) SpawnX() float64 {
	return float64(l.SpawnCol*l.TileSize) + float64(l.TileSize-PlayerWidth)/2
}

// SpawnY returns the spawn position in pixels (hitbox top-left).
func (l *Level) SpawnY() float64 {
	return float64((l.SpawnRow+1)*l.TileSize) - PlayerHeight
}
