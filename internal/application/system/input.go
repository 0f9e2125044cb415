package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds one frame's action state. Held flags come straight
// from the keyboard; JumpPressed/JumpReleased are edge-detected.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	Jump         bool
	JumpPressed  bool
	JumpReleased bool
}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyW, ebiten.KeyArrowUp}

// InputSystem reads the keyboard into an InputState snapshot.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current input state. Arrows and WASD are both bound.
func (s *InputSystem) Poll() InputState {
	in := InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
	for _, key := range jumpKeys {
		in.Jump = in.Jump || ebiten.IsKeyPressed(key)
		in.JumpPressed = in.JumpPressed || inpututil.IsKeyJustPressed(key)
		in.JumpReleased = in.JumpReleased || inpututil.IsKeyJustReleased(key)
	}
	return in
}
