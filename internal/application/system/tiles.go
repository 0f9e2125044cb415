package system

import "math"

// firstTile returns the index of the tile containing the point v.
func firstTile(v, tileSize float64) int {
	return int(math.Floor(v / tileSize))
}

// lastTile returns the index of the tile containing the point just
// before v, so an edge resting exactly on a tile boundary does not
// count as overlapping the next tile.
func lastTile(v, tileSize float64) int {
	return int(math.Ceil(v/tileSize)) - 1
}

// tileSpan returns the inclusive tile index range covered by [lo, hi).
func tileSpan(lo, hi, tileSize float64) (int, int) {
	return firstTile(lo, tileSize), lastTile(hi, tileSize)
}
