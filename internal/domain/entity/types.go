package entity

// TileCode identifies what a single grid cell is made of.
type TileCode int

const (
	TileAir TileCode = iota
	TileSolid
	TilePlatform // one-way: solid from above only
	TileHazard
	TileCoin
	TileExit
)

// String returns the string representation of the tile code
func (c TileCode) String() string {
	switch c {
	case TileAir:
		return "air"
	case TileSolid:
		return "solid"
	case TilePlatform:
		return "platform"
	case TileHazard:
		return "hazard"
	case TileCoin:
		return "coin"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Grid is the mutable per-level tile map. Rows are outer, columns inner.
// The only legal mutation is consuming a coin cell.
type Grid struct {
	Width    int
	Height   int
	TileSize int
	cells    [][]TileCode
}

// NewGrid builds a grid from row-major tile codes. Rows must share one width.
func NewGrid(rows [][]TileCode, tileSize int) *Grid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return &Grid{
		Width:    width,
		Height:   len(rows),
		TileSize: tileSize,
		cells:    rows,
	}
}

// CodeAt returns the tile code at the given tile coordinates. Off the
// sides and top reads as solid, which caps the playable area; below the
// bottom reads as air so pits stay fatal.
func (g *Grid) CodeAt(col, row int) TileCode {
	if row >= g.Height {
		return TileAir
	}
	if col < 0 || col >= g.Width || row < 0 {
		return TileSolid
	}
	return g.cells[row][col]
}

// SolidAt reports whether the tile at the given tile coordinates is solid.
func (g *Grid) SolidAt(col, row int) bool {
	return g.CodeAt(col, row) == TileSolid
}

// Consume turns a coin cell into air and reports whether it did.
func (g *Grid) Consume(col, row int) bool {
	if g.CodeAt(col, row) != TileCoin {
		return false
	}
	g.cells[row][col] = TileAir
	return true
}

// PixelWidth returns the grid width in pixels.
func (g *Grid) PixelWidth() float64 {
	return float64(g.Width * g.TileSize)
}

// PixelHeight returns the grid height in pixels.
func (g *Grid) PixelHeight() float64 {
	return float64(g.Height * g.TileSize)
}
