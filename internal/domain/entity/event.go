package entity

// Event is a value emitted by a simulation step for the presentation
// collaborators (audio, particles, HUD). Physics never performs side
// effects itself; the loop forwards these after each frame.
type Event interface {
	isEvent()
}

// JumpEvent fires when the player leaves the ground by jumping.
type JumpEvent struct{}

func (JumpEvent) isEvent() {}

// LandEvent fires on the airborne-to-grounded transition only.
type LandEvent struct{}

func (LandEvent) isEvent() {}

// HurtEvent fires whenever the player takes damage, fatal or not.
type HurtEvent struct{}

func (HurtEvent) isEvent() {}

// DieEvent fires when the player dies.
type DieEvent struct{}

func (DieEvent) isEvent() {}

// CollectEvent fires when a coin cell is consumed.
type CollectEvent struct {
	Col, Row int
}

func (CollectEvent) isEvent() {}

// ExitEvent fires while the player overlaps an exit tile. Ending the
// level is the session's decision, not the physics step's.
type ExitEvent struct{}

func (ExitEvent) isEvent() {}

// ShootEvent fires when a shooter spawns its projectile pair.
type ShootEvent struct{}

func (ShootEvent) isEvent() {}
