package entity

// Player hitbox size in pixels.
const (
	PlayerWidth  = 24
	PlayerHeight = 32
)

// Player represents the player entity.
// Position is the hitbox top-left in pixels, velocity in pixels per frame.
// Score and Lives survive level loads; the session copies them across,
// the entity itself is rebuilt at every spawn.
type Player struct {
	X, Y   float64
	VX, VY float64

	OnGround    bool
	Alive       bool
	FacingRight bool

	Score int
	Lives int

	// Frame counters
	CoyoteTimer     int
	JumpBuffered    bool
	JumpBufferTimer int
	IframeTimer     int
}

// NewPlayer creates a live player at the given pixel position.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Alive:       true,
		FacingRight: true,
	}
}

// IsInvincible returns true while hazard and enemy damage is suppressed.
func (p *Player) IsInvincible() bool {
	return p.IframeTimer > 0
}

// Facing returns the facing direction as -1 or 1.
func (p *Player) Facing() int {
	if p.FacingRight {
		return 1
	}
	return -1
}

// Rect returns the hitbox in world coordinates.
func (p *Player) Rect() (x, y, w, h float64) {
	return p.X, p.Y, PlayerWidth, PlayerHeight
}
