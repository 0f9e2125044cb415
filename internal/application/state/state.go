package state

// SessionState represents the current state of a running session
type SessionState int

const (
	StateRunning SessionState = iota
	StateDeathPause
	StateWinPause
	StateVictory
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateDeathPause:
		return "DeathPause"
	case StateWinPause:
		return "WinPause"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}
