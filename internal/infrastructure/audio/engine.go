package audio

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const masterVolume = 0.5

// Engine owns the audio context and a cache of pre-rendered PCM, one
// buffer per cue. Playback is fire-and-forget: each Play spawns a
// throwaway player over the cached bytes.
type Engine struct {
	ctx   *eaudio.Context
	pcm   [soundTypeCount][]byte
	muted bool
}

// NewEngine renders every cue up front and binds the process-wide
// audio context.
func NewEngine(sampleRate int, muted bool) *Engine {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sampleRate)
	}

	e := &Engine{ctx: ctx, muted: muted}
	for st := SoundType(0); st < soundTypeCount; st++ {
		buf := generateSound(st, sampleRate)
		for i := range buf {
			buf[i] *= masterVolume
		}
		e.pcm[st] = toPCM(buf)
	}
	return e
}

// Play starts a cue. Overlapping playback of the same cue is allowed.
func (e *Engine) Play(st SoundType) {
	if e.muted || st < 0 || st >= soundTypeCount {
		return
	}
	p := e.ctx.NewPlayerFromBytes(e.pcm[st])
	p.Play()
}

func (e *Engine) SetMuted(muted bool) {
	e.muted = muted
}

func (e *Engine) Muted() bool {
	return e.muted
}
