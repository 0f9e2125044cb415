package audio

// SoundType identifies a generated sound cue.
type SoundType int

const (
	SoundJump SoundType = iota
	SoundLand
	SoundHurt
	SoundDie
	SoundCollect
	SoundExit
	SoundStomp
	SoundShoot
	soundTypeCount
)

// String returns the string representation of the sound type
func (t SoundType) String() string {
	switch t {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundHurt:
		return "hurt"
	case SoundDie:
		return "die"
	case SoundCollect:
		return "collect"
	case SoundExit:
		return "exit"
	case SoundStomp:
		return "stomp"
	case SoundShoot:
		return "shoot"
	default:
		return "unknown"
	}
}
