package entity

// EnemyKind selects the AI variant of an enemy.
type EnemyKind int

const (
	EnemyWalker EnemyKind = iota
	EnemyJumper
	EnemyShooter
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyWalker:
		return "walker"
	case EnemyJumper:
		return "jumper"
	case EnemyShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// Enemy hitbox size in pixels.
const (
	EnemyWidth  = 28
	EnemyHeight = 28
)

// Enemy is a kind-tagged enemy entity. Shared fields cover every kind;
// JumpTimer is used by jumpers only, FireTimer and Projectiles by shooters.
// Enemies are built once per level load and never recreated mid-level;
// a dead enemy stays in the slice with Alive=false.
type Enemy struct {
	Kind EnemyKind

	X, Y   float64
	VX, VY float64
	Alive  bool

	Dir     int // patrol direction, -1 or 1
	OriginX float64
	Range   float64 // patrol half-width in pixels

	JumpTimer int
	FireTimer int

	Projectiles []*Projectile
}

// NewEnemy creates a live enemy at the given pixel position with the
// patrol origin anchored there.
func NewEnemy(kind EnemyKind, x, y float64, patrolRange float64, dir int) *Enemy {
	if dir == 0 {
		dir = -1
	}
	return &Enemy{
		Kind:    kind,
		X:       x,
		Y:       y,
		Alive:   true,
		Dir:     dir,
		OriginX: x,
		Range:   patrolRange,
	}
}

// Rect returns the hitbox in world coordinates.
func (e *Enemy) Rect() (x, y, w, h float64) {
	return e.X, e.Y, EnemyWidth, EnemyHeight
}

// Projectile hitbox size in pixels.
const (
	ProjectileWidth  = 10
	ProjectileHeight = 6
)

// Projectile is a shooter-owned bullet. It only moves horizontally and
// dies on wall impact, out-of-bounds travel, or hitting the player.
type Projectile struct {
	X, Y  float64
	VX    float64
	Alive bool
}

// NewProjectile creates a live projectile.
func NewProjectile(x, y, vx float64) *Projectile {
	return &Projectile{X: x, Y: y, VX: vx, Alive: true}
}

// Rect returns the hitbox in world coordinates.
func (pr *Projectile) Rect() (x, y, w, h float64) {
	return pr.X, pr.Y, ProjectileWidth, ProjectileHeight
}
